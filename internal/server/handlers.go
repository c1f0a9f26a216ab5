package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/service"
	"github.com/mmynk/splitledger/internal/storage"
)

// Handler encapsulates the HTTP handling logic around the ledger service.
type Handler struct {
	svc *service.LedgerService
}

// NewHandler creates a new Handler backed by the given service.
func NewHandler(svc *service.LedgerService) *Handler {
	return &Handler{svc: svc}
}

type createUserRequest struct {
	Name string `json:"name"`
}

type createExpenseRequest struct {
	ExpenseDate string          `json:"expenseDate"`
	GroupName   string          `json:"groupName"`
	ExpenseName string          `json:"expenseName"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	SplitType   string          `json:"split_type"`
	CreatedBy   string          `json:"createdBy"`
}

type shareRequest struct {
	UserName   string          `json:"userName"`
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

// CreateUser handles POST /addUsers.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, storage.ErrDuplicate):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Successfully created user: %s", user.Name),
		"user":    user,
	})
}

// CreateExpense handles POST /addExpenses.
// Unknown creators and duplicate expense names surface as 500: that is the
// contract clients of this API already depend on.
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	expense, err := h.svc.CreateExpense(r.Context(), service.CreateExpenseInput{
		ExpenseDate: req.ExpenseDate,
		GroupName:   req.GroupName,
		ExpenseName: req.ExpenseName,
		TotalAmount: req.TotalAmount,
		SplitType:   req.SplitType,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to create expense: %v", err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Successfully created expense: %s", expense.ExpenseName),
		"expense": expense,
	})
}

// AddParticipants handles POST /expenses/{expenseName}/users?request=a,b,c.
// The user names arrive as a comma-separated query parameter.
func (h *Handler) AddParticipants(w http.ResponseWriter, r *http.Request) {
	expenseName := chi.URLParam(r, "expenseName")
	csv := r.URL.Query().Get("request")
	if csv == "" {
		writeError(w, http.StatusBadRequest, "request query parameter is required")
		return
	}
	userNames := strings.Split(csv, ",")

	if err := h.svc.AddParticipants(r.Context(), expenseName, userNames); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to add users to expense: %v", err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Successfully added users to expense: %s with users: %s", expenseName, csv),
	})
}

// SetShares handles POST /{expenseName} with a JSON array of share inputs.
func (h *Handler) SetShares(w http.ResponseWriter, r *http.Request) {
	expenseName := chi.URLParam(r, "expenseName")

	var reqs []shareRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	shares := make([]service.ShareInput, len(reqs))
	for i, req := range reqs {
		shares[i] = service.ShareInput{
			UserName:   req.UserName,
			Percentage: req.Percentage,
			Amount:     req.Amount,
		}
	}

	if err := h.svc.SetShares(r.Context(), expenseName, shares); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to add shares: %v", err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Successfully added %d shares for expense: %s", len(shares), expenseName),
	})
}

// UserBalances handles GET /users/{userName}/expense-shares.
func (h *Handler) UserBalances(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")

	results, err := h.svc.UserBalances(r.Context(), userName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to retrieve expense shares: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// ListUsers handles GET /getUsers.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// ListExpenses handles GET /getExpensese.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.ListExpenses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

// ListParticipants handles GET /getExpenseUser.
func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.svc.ListParticipants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, participants)
}

// ListShares handles GET /getExpenseShare.
func (h *Handler) ListShares(w http.ResponseWriter, r *http.Request) {
	shares, err := h.svc.ListShares(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, shares)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
