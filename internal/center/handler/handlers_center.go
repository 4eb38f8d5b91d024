package handler

import (
	"net/http"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/httputil"
	"lscmis/pkg/requestcontext"
)

func (h *Handler) handleOfferedServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	centerID, err := scopedCenter(ctx)
	if err != nil {
		h.fail(ctx, w, "list services failed", err)
		return
	}
	items, err := h.service.OfferedServices(ctx, centerID)
	if err != nil {
		h.fail(ctx, w, "list services failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ItemListResponse{Success: true, Items: toItems(items)})
}

func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	centerID, err := scopedCenter(ctx)
	if err != nil {
		h.fail(ctx, w, "list transactions failed", err)
		return
	}
	from, err := optionalDate(r.URL.Query().Get("from"), "from")
	if err != nil {
		h.fail(ctx, w, "list transactions failed", err)
		return
	}
	to, err := optionalDate(r.URL.Query().Get("to"), "to")
	if err != nil {
		h.fail(ctx, w, "list transactions failed", err)
		return
	}
	txns, err := h.service.ListTransactions(ctx, centerID, models.TransactionFilter{From: from, To: to})
	if err != nil {
		h.fail(ctx, w, "list transactions failed", err)
		return
	}
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransaction(t))
	}
	httputil.WriteJSON(w, http.StatusOK, TransactionListResponse{Success: true, Transactions: out})
}

func (h *Handler) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	centerID, err := scopedCenter(ctx)
	if err != nil {
		h.fail(ctx, w, "record transaction failed", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[RecordTransactionRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	fields, _ := req.fields()
	txn, err := h.service.RecordTransaction(ctx, centerID, fields)
	if err != nil {
		h.fail(ctx, w, "record transaction failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, TransactionResponse{Success: true, Transaction: toTransaction(txn)})
}

func (h *Handler) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	centerID, err := scopedCenter(ctx)
	if err != nil {
		h.fail(ctx, w, "delete transaction failed", err)
		return
	}
	txID, err := pathID(r, "transactionID", id.ParseTransactionID)
	if err != nil {
		h.fail(ctx, w, "delete transaction failed", err)
		return
	}
	if err := h.service.DeleteTransaction(ctx, centerID, txID); err != nil {
		h.fail(ctx, w, "delete transaction failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
