package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"fuel-custody-service/internal/api/dto"
	"fuel-custody-service/internal/ports"
	"fuel-custody-service/internal/services"
)

// ConsignmentHandler exposes the SCT workflow: listing, load-out plate
// lookup, delivery scans, manual confirmation and QR generation.
type ConsignmentHandler struct {
	Repo ports.TransactionRepository
	Svc  *services.ConsignmentService
}

func (h *ConsignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	txs, err := h.Repo.ListTransactions(r.Context())
	if err != nil {
		log.Printf("list transactions failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(txs)),
	}
	for _, tx := range txs {
		res.Transactions = append(res.Transactions, dto.FromTransaction(tx))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ConsignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	id := r.PathValue("id")
	tx, err := h.Repo.GetTransaction(r.Context(), id)
	if err != nil {
		log.Printf("get transaction failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if tx == nil {
		writeError(w, r, http.StatusNotFound, "no matching transaction")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromTransaction(tx))
}

// Lookup is the load-out path: it resolves a plate to its active
// consignment, synthesizing one when no record exists.
func (h *ConsignmentHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.LookupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Plate) == "" {
		writeError(w, r, http.StatusBadRequest, "plate is required")
		return
	}

	tx, created, err := h.Svc.LookupByPlate(r.Context(), req.Plate)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFormat) {
			writeError(w, r, http.StatusBadRequest, "invalid plate")
			return
		}
		log.Printf("plate lookup failed: plate=%q err=%v", req.Plate, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, dto.LookupResponse{
		Created:     created,
		Transaction: dto.FromTransaction(tx),
	})
}

// Scan is the delivery path. Unlike Lookup it never synthesizes: a scan
// that matches nothing surfaces an explicit no-match condition.
func (h *ConsignmentHandler) Scan(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ScanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tx, err := h.Svc.ConfirmScan(r.Context(), []byte(req.Payload))
	switch {
	case errors.Is(err, services.ErrInvalidFormat):
		writeError(w, r, http.StatusBadRequest, "invalid scan payload format")
		return
	case errors.Is(err, services.ErrNoMatch):
		writeError(w, r, http.StatusNotFound, "no matching transaction")
		return
	case err != nil:
		log.Printf("delivery scan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromTransaction(tx))
}

// Confirm is the manual detail-view action. Re-confirming a completed
// consignment responds 200 with the unchanged record.
func (h *ConsignmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	id := r.PathValue("id")
	tx, err := h.Svc.ConfirmDelivery(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrNoMatch):
		writeError(w, r, http.StatusNotFound, "no matching transaction")
		return
	case err != nil:
		log.Printf("confirm delivery failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromTransaction(tx))
}

// QR renders the consignment's custody QR as a PNG.
func (h *ConsignmentHandler) QR(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	id := r.PathValue("id")
	tx, err := h.Repo.GetTransaction(r.Context(), id)
	if err != nil {
		log.Printf("qr lookup failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if tx == nil {
		writeError(w, r, http.StatusNotFound, "no matching transaction")
		return
	}

	content, err := services.QRContent(tx)
	if err != nil {
		log.Printf("qr encode failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	png, err := qrcode.Encode(string(content), qrcode.Medium, 256)
	if err != nil {
		log.Printf("qr render failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		log.Printf("qr write failed: id=%s err=%v", id, err)
	}
}

// decodeBody enforces a single strict JSON object body.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}
