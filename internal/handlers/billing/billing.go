package billing

//go:generate mockgen -source=billing.go -destination=mock_billing.go -package=billing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/GlebRadaev/clubledger/internal/dto"
	"github.com/GlebRadaev/clubledger/internal/handlers/respond"
	"github.com/GlebRadaev/clubledger/internal/service/billingservice"
	"github.com/GlebRadaev/clubledger/pkg/utils"
	"github.com/GlebRadaev/clubledger/pkg/validate"
	"github.com/shopspring/decimal"
)

type Service interface {
	BillPeriod(ctx context.Context, operatorID int, req billingservice.BillRequest) (*domain.Payment, error)
	BillAllActive(ctx context.Context, operatorID, month, year int, dueDate *time.Time) (*billingservice.BulkResult, error)
	ApplyPayment(ctx context.Context, operatorID, paymentID int, app billingservice.PaymentApplication) (*domain.Payment, error)
	SetStatus(ctx context.Context, operatorID, paymentID int, status domain.PaymentStatus) (*domain.Payment, error)
	EditPayment(ctx context.Context, operatorID, paymentID int, patch domain.PaymentPatch) (*domain.Payment, error)
	Remove(ctx context.Context, operatorID, paymentID int) error
	MonthlySummary(ctx context.Context, month, year int) (*domain.MonthlySummary, error)
	Debtors(ctx context.Context, filter domain.DebtorFilter) (*domain.DebtorsReport, error)
}

type DebtService interface {
	Eligibility(ctx context.Context, memberID, maxDebtMonths int) (*domain.Eligibility, error)
}

type BillingHandler struct {
	billingService Service
	debtService    DebtService
}

func New(billingService Service, debtService DebtService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		debtService:    debtService,
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// BillPeriod godoc
//
//	@Summary		Bill a period
//	@Description	Create the dues record of one member for one month
//	@Tags			Billing
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BillPeriodRequestDTO	true	"Member and period"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		409	{object}	utils.Response	"Period already billed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/periods [post]
func (h *BillingHandler) BillPeriod(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := respond.Operator(w, r)
	if !ok {
		return
	}

	var req dto.BillPeriodRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid due_date")
		return
	}

	payment, err := h.billingService.BillPeriod(r.Context(), operatorID, billingservice.BillRequest{
		MemberID: req.MemberID,
		Month:    req.Month,
		Year:     req.Year,
		DueDate:  dueDate,
		Notes:    req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPaymentResponse(payment))
}

// BillAllActive godoc
//
//	@Summary		Bill a period for every active member
//	@Description	Members already billed for the period are skipped
//	@Tags			Billing
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BulkBillRequestDTO	true	"Period"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BulkBillResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/periods/bulk [post]
func (h *BillingHandler) BillAllActive(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := respond.Operator(w, r)
	if !ok {
		return
	}

	var req dto.BulkBillRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid due_date")
		return
	}

	result, err := h.billingService.BillAllActive(r.Context(), operatorID, req.Month, req.Year, dueDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BulkBillResponseDTO{
		Message: fmt.Sprintf("Generated %d payments", result.Created),
		Created: result.Created,
		Skipped: result.Skipped,
		Total:   result.Total,
	})
}

// ApplyPayment godoc
//
//	@Summary		Register a payment
//	@Description	Add an amount to what the member has paid for the period
//	@Tags			Billing
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Payment id"
//	@Param			request	body	dto.ApplyPaymentRequestDTO	true	"Amount received"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AppliedPaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/payments/{id}/apply [patch]
func (h *BillingHandler) ApplyPayment(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := respond.Operator(w, r)
	if !ok {
		return
	}

	paymentID, ok := respond.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	var req dto.ApplyPaymentRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}
	paymentDate, err := dto.ParseDate(req.PaymentDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment_date")
		return
	}

	payment, err := h.billingService.ApplyPayment(r.Context(), operatorID, paymentID, billingservice.PaymentApplication{
		Amount: req.Amount,
		Method: req.PaymentMethod,
		Date:   paymentDate,
		Notes:  req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAppliedPaymentResponse(payment, req.Amount))
}

// SetStatus godoc
//
//	@Summary		Override payment status
//	@Tags			Billing
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Payment id"
//	@Param			request	body	dto.SetPaymentStatusRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentStatusResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/payments/{id}/status [patch]
func (h *BillingHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := respond.Operator(w, r)
	if !ok {
		return
	}

	paymentID, ok := respond.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	var req dto.SetPaymentStatusRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}

	payment, err := h.billingService.SetStatus(r.Context(), operatorID, paymentID, domain.PaymentStatus(req.Status))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentStatusResponseDTO{ID: payment.ID, Status: string(payment.Status)})
}

// EditPayment godoc
//
//	@Summary		Correct a payment
//	@Description	Only the fields present in the body change; balance, type and status are recomputed
//	@Tags			Billing
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Payment id"
//	@Param			request	body	dto.EditPaymentRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/payments/{id} [patch]
func (h *BillingHandler) EditPayment(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := respond.Operator(w, r)
	if !ok {
		return
	}

	paymentID, ok := respond.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	var req dto.EditPaymentRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}
	patch, err := req.Patch()
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	payment, err := h.billingService.EditPayment(r.Context(), operatorID, paymentID, patch)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentResponse(payment))
}

// RemovePayment godoc
//
//	@Summary		Delete a payment
//	@Tags			Billing
//	@Produce		json
//	@Param			id	path	int	true	"Payment id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Payment deleted"
//	@Failure		400	{object}	utils.Response	"Invalid payment id"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/payments/{id} [delete]
func (h *BillingHandler) RemovePayment(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := respond.Operator(w, r)
	if !ok {
		return
	}

	paymentID, ok := respond.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	if err := h.billingService.Remove(r.Context(), operatorID, paymentID); err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payment deleted"})
}

// MonthlySummary godoc
//
//	@Summary		Monthly collection summary
//	@Tags			Billing
//	@Produce		json
//	@Param			month	query	int	true	"Month 1-12"
//	@Param			year	query	int	true	"Year"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MonthlySummaryResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid period"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/summary [get]
func (h *BillingHandler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	if errMonth != nil || errYear != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "month and year are required")
		return
	}

	summary, err := h.billingService.MonthlySummary(r.Context(), month, year)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMonthlySummaryResponse(summary))
}

// Debtors godoc
//
//	@Summary		Debtors report
//	@Description	Members with unsettled periods, largest debt first
//	@Tags			Billing
//	@Produce		json
//	@Param			status		query	string	false	"pendiente, parcial or vencido"
//	@Param			min_debt	query	number	false	"Minimum total debt"
//	@Param			min_months	query	int		false	"Minimum unsettled periods"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DebtorsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/debtors [get]
func (h *BillingHandler) Debtors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filter domain.DebtorFilter
	if v := q.Get("status"); v != "" {
		status := domain.PaymentStatus(v)
		filter.Status = &status
	}
	if v := q.Get("min_debt"); v != "" {
		minDebt, err := decimal.NewFromString(v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid min_debt")
			return
		}
		filter.MinDebt = &minDebt
	}
	if v := q.Get("min_months"); v != "" {
		minMonths, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid min_months")
			return
		}
		filter.MinMonths = &minMonths
	}

	report, err := h.billingService.Debtors(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDebtorsResponse(report))
}

// Eligibility godoc
//
//	@Summary		Purchase eligibility of a member
//	@Description	Reports whether the member may buy given the unsettled periods
//	@Tags			Billing
//	@Produce		json
//	@Param			id				path	int	true	"Member id"
//	@Param			max_debt_months	query	int	false	"Override of the configured limit"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EligibilityResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid member id"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/members/{id}/eligibility [get]
func (h *BillingHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	memberID, ok := respond.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	var maxDebtMonths int
	if v := r.URL.Query().Get("max_debt_months"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid max_debt_months")
			return
		}
		maxDebtMonths = n
	}

	e, err := h.debtService.Eligibility(r.Context(), memberID, maxDebtMonths)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEligibilityResponse(e))
}
