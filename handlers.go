package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Andersonriberpro/ribersolucoespack/models"
	"github.com/Andersonriberpro/ribersolucoespack/models/reports"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
	"github.com/Andersonriberpro/ribersolucoespack/workflow"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// requireSession aborts with 401 unless the session middleware resolved
// a user with a workspace.
func requireSession(c *gin.Context) bool {
	if _, ok := utils.GetUsernameFromContext(c.Request.Context()); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return false
	}
	if workspaceId, ok := utils.GetWorkspaceIdFromContext(c.Request.Context()); !ok || workspaceId == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return false
	}
	return true
}

// bindError maps validator failures to a per-field response; anything
// else is reported as a generic bad request.
func bindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": utils.ProcessValidationErrors(err),
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

/* auth */

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		info, err := models.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

// tokenHandler issues a signed JWT for integration clients that cannot
// keep a redis-backed session. Same credentials as /auth/login.
func tokenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		user, err := models.GetUserByUsername(c.Request.Context(), req.Username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		if err := utils.ComparePassword(user.Password, req.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		if user.IsActive == nil || !*user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user is disabled"})
			return
		}
		token, err := utils.JwtGenerate(user.ID, string(user.Role))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := models.Logout(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": ok})
	}
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func changePasswordHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var req changePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		user, err := models.ChangePassword(c.Request.Context(), req.OldPassword, req.NewPassword)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user.PrepareGive()
		c.JSON(http.StatusOK, user)
	}
}

/* clients + funnel */

func listClientsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		includeArchived := c.Query("include_archived") == "true"
		clients, err := models.ListClients(c.Request.Context(), includeArchived)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, clients)
	}
}

func createClientHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var input models.NewClient
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		client, err := models.CreateClient(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, client)
	}
}

func getClientHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		client, err := models.GetClient(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

func updateClientHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewClient
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		client, err := models.UpdateClient(c.Request.Context(), id, &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

func deleteClientHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		client, err := models.DeleteClient(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

type transitionStageRequest struct {
	Status models.KanbanStage `json:"status" binding:"required"`
}

func transitionStageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req transitionStageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		client, err := workflow.TransitionStage(c.Request.Context(), id, req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

func logInteractionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewInteraction
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		interaction, err := workflow.LogInteraction(c.Request.Context(), id, &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, interaction)
	}
}

type nextActionRequest struct {
	Date        *string `json:"date"`
	Description string  `json:"description"`
}

func scheduleNextActionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req nextActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		var date *time.Time
		if req.Date != nil && *req.Date != "" {
			parsed, err := time.Parse("2006-01-02", *req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
				return
			}
			date = &parsed
		}
		client, err := workflow.ScheduleNextAction(c.Request.Context(), id, date, req.Description)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

func archiveClientHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		client, err := workflow.ArchiveClient(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

func clientTimelineHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		client, err := models.GetClient(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		days, _ := models.DaysInCurrentStage(client, time.Now())
		c.JSON(http.StatusOK, gin.H{
			"client_id":             client.ID,
			"status":                client.Status,
			"days_in_current_stage": days,
			"action_due":            models.IsActionDue(client, time.Now(), ""),
			"events":                models.Timeline(client),
		})
	}
}

func funnelBoardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		clients, err := models.ListClients(c.Request.Context(), false)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.BuildFunnelBoard(clients))
	}
}

/* pricing */

type pricingPreviewRequest struct {
	Passo             string `json:"passo"`
	Largura           string `json:"largura"`
	Gramatura         string `json:"gramatura"`
	TipoEmbalagem     string `json:"tipo_embalagem"`
	Unidade           string `json:"unidade"`
	Quantidade        string `json:"quantidade"`
	PrecoUnitarioIcms string `json:"preco_unitario_icms"`
	PercentualIpi     string `json:"percentual_ipi"`
}

// pricingPreviewHandler runs the unit-conversion engine without touching
// any record, so a rep can simulate a quote while filling the form.
func pricingPreviewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		_, span := tracer.Start(c.Request.Context(), "pricing.preview")
		defer span.End()

		var req pricingPreviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		unidade := req.Unidade
		if unidade == "" {
			unidade = utils.NaturalQuantityUnit(req.TipoEmbalagem)
		}
		ipiPercent := utils.ParseDecimalOrZero(req.PercentualIpi)
		if req.PercentualIpi == "" {
			ipiPercent = decimal.NewFromFloat(9.75)
		}

		pesoUnitario := utils.ComputeUnitWeight(
			utils.ParseDecimalOrZero(req.Passo),
			utils.ParseDecimalOrZero(req.Largura),
			utils.ParseDecimalOrZero(req.Gramatura))
		count, pesoTotal := utils.ResolveQuantity(unidade,
			utils.ParseDecimalOrZero(req.Quantidade), pesoUnitario)
		valorSemIpi, valorIpi, valorFinal := utils.ComputeTotals(count,
			utils.ParseDecimalOrZero(req.PrecoUnitarioIcms), ipiPercent)

		c.JSON(http.StatusOK, gin.H{
			"unidade":             unidade,
			"peso_unitario":       pesoUnitario,
			"rendimento":          utils.ComputeYield(pesoUnitario),
			"quantidade_milheiro": count,
			"peso_total_kg":       pesoTotal,
			"percentual_ipi":      ipiPercent,
			"valor_sem_ipi":       valorSemIpi,
			"valor_ipi":           valorIpi,
			"valor_final":         valorFinal,
		})
	}
}

/* providers */

func listProvidersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		providers, err := models.ListProviders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, providers)
	}
}

func createProviderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var input models.NewProvider
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		provider, err := models.CreateProvider(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, provider)
	}
}

func getProviderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		provider, err := models.GetProvider(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, provider)
	}
}

func updateProviderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewProvider
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		provider, err := models.UpdateProvider(c.Request.Context(), id, &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, provider)
	}
}

func deleteProviderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		provider, err := models.DeleteProvider(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, provider)
	}
}

/* products */

func listProductsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		products, err := models.ListProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func createProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var input models.NewProduct
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		product, err := models.CreateProduct(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func getProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		product, err := models.GetProduct(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"product":       product,
			"peso_unitario": product.UnitWeight(),
			"rendimento":    product.Yield(),
			"unidade":       product.DefaultUnit(),
		})
	}
}

func updateProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewProduct
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		product, err := models.UpdateProduct(c.Request.Context(), id, &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func deleteProductHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		product, err := models.DeleteProduct(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

/* budgets */

func listBudgetsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		budgets, err := models.ListBudgets(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, budgets)
	}
}

func createBudgetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var input models.NewBudget
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		budget, err := models.CreateBudget(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, budget)
	}
}

func getBudgetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		budget, err := models.GetBudget(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, budget)
	}
}

func updateBudgetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewBudget
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		budget, err := models.UpdateBudget(c.Request.Context(), id, &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, budget)
	}
}

func deleteBudgetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		budget, err := models.DeleteBudget(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, budget)
	}
}

/* orders + commissions */

func listOrdersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		orders, err := models.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func createOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		var input models.NewOrder
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		order, err := models.CreateOrder(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func getOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		order, err := models.GetOrder(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func updateOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewOrder
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		order, err := models.UpdateOrder(c.Request.Context(), id, &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func deleteOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		order, err := models.DeleteOrder(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type commissionStatusRequest struct {
	Status models.CommissionStatus `json:"status" binding:"required"`
}

func updateCommissionStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req commissionStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		order, err := models.UpdateCommissionStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func commissionSummaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		summary, err := reports.GetCommissionSummary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// dashboardSummaryHandler serves the funnel's companion numbers: KPI
// totals, monthly billing/kg charts and the per-supplier split. The
// optional start_date/end_date query params window by data_pedido.
func dashboardSummaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		startDate := c.Query("start_date")
		endDate := c.Query("end_date")
		for _, value := range []string{startDate, endDate} {
			if value == "" {
				continue
			}
			if _, err := time.Parse("2006-01-02", value); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
				return
			}
		}
		summary, err := reports.GetDashboardSummary(c.Request.Context(), startDate, endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func commissionExportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		c.Writer.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Writer.Header().Set("Content-Disposition", "attachment; filename=comissoes.xlsx")
		if err := reports.ExportCommissionsXLSX(c.Request.Context(), c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write file"})
		}
	}
}

/* users (admin) */

func listUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		if isAdmin, _ := utils.GetIsAdminFromContext(c.Request.Context()); !isAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		users, err := models.GetAllUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func createUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(c) {
			return
		}
		if isAdmin, _ := utils.GetIsAdminFromContext(c.Request.Context()); !isAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		var input models.NewUser
		if err := c.ShouldBindJSON(&input); err != nil {
			bindError(c, err)
			return
		}
		user, err := models.CreateUser(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}
