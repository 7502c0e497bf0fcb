package config

import (
	"context"
	"strings"

	"github.com/Andersonriberpro/ribersolucoespack/appctx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkspaceGuardPlugin enforces per-workspace isolation by automatically scoping
// queries/updates/deletes to the request's workspace_id when the model has a workspace_id column.
//
// NOTE:
// - This does NOT apply to Raw SQL queries. Those must include workspace_id manually.
// - Admin/internal bypass is explicit via context flags.
type WorkspaceGuardPlugin struct{}

func NewWorkspaceGuardPlugin() *WorkspaceGuardPlugin { return &WorkspaceGuardPlugin{} }

func (p *WorkspaceGuardPlugin) Name() string { return "workspace_guard" }

func (p *WorkspaceGuardPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().Before("gorm:query").Register("workspace_guard:query", workspaceGuardCallback); err != nil {
		return err
	}
	// Row (First/Take)
	if err := db.Callback().Row().Before("gorm:row").Register("workspace_guard:row", workspaceGuardCallback); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").Register("workspace_guard:update", workspaceGuardCallback); err != nil {
		return err
	}
	if err := db.Callback().Delete().Before("gorm:delete").Register("workspace_guard:delete", workspaceGuardCallback); err != nil {
		return err
	}
	return nil
}

func workspaceGuardCallback(db *gorm.DB) {
	if db == nil || db.Statement == nil {
		return
	}
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	if shouldBypassWorkspaceScope(ctx) {
		return
	}
	workspaceID := workspaceIdFromContext(ctx)
	if workspaceID == "" {
		return
	}

	// Only apply if the current model/table includes a workspace_id column.
	if db.Statement.Schema == nil {
		return
	}
	hasWorkspaceID := false
	for _, f := range db.Statement.Schema.Fields {
		if strings.EqualFold(f.DBName, "workspace_id") {
			hasWorkspaceID = true
			break
		}
	}
	if !hasWorkspaceID {
		return
	}

	// Don't duplicate an explicit workspace filter.
	if whereHasWorkspaceID(db.Statement.Clauses["WHERE"]) {
		return
	}

	db.Statement.AddClause(clause.Where{
		Exprs: []clause.Expression{
			clause.Eq{
				Column: clause.Column{Table: db.Statement.Table, Name: "workspace_id"},
				Value:  workspaceID,
			},
		},
	})
}

func workspaceIdFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(appctx.ContextKeyWorkspaceId).(string); ok && v != "" {
		return v
	}
	return ""
}

func shouldBypassWorkspaceScope(ctx context.Context) bool {
	if v, ok := ctx.Value(appctx.ContextKeySkipWorkspaceScope).(bool); ok && v {
		return true
	}
	if v, ok := ctx.Value(appctx.ContextKeyIsAdmin).(bool); ok && v {
		return true
	}
	return false
}

func whereHasWorkspaceID(c clause.Clause) bool {
	if c.Expression == nil {
		return false
	}
	w, ok := c.Expression.(clause.Where)
	if !ok {
		return false
	}
	for _, e := range w.Exprs {
		if exprHasWorkspaceID(e) {
			return true
		}
	}
	return false
}

func exprHasWorkspaceID(e clause.Expression) bool {
	switch v := e.(type) {
	case clause.Eq:
		return colIsWorkspaceID(v.Column)
	case clause.Neq:
		return colIsWorkspaceID(v.Column)
	case clause.IN:
		return colIsWorkspaceID(v.Column)
	case clause.AndConditions:
		for _, x := range v.Exprs {
			if exprHasWorkspaceID(x) {
				return true
			}
		}
		return false
	case clause.OrConditions:
		for _, x := range v.Exprs {
			if exprHasWorkspaceID(x) {
				return true
			}
		}
		return false
	case clause.Expr:
		// Best-effort for raw expressions.
		return strings.Contains(strings.ToLower(v.SQL), "workspace_id")
	default:
		return false
	}
}

func colIsWorkspaceID(col any) bool {
	switch c := col.(type) {
	case string:
		return strings.EqualFold(c, "workspace_id")
	case clause.Column:
		return strings.EqualFold(c.Name, "workspace_id")
	default:
		return false
	}
}
