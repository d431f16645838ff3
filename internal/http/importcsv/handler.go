package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jpcaldeira/tandem/internal/categorize"
	"github.com/jpcaldeira/tandem/internal/importer"
	"github.com/jpcaldeira/tandem/internal/session"
	"github.com/jpcaldeira/tandem/internal/transaction"
)

type Handler struct {
	importSvc     *importer.Service
	txSvc         *transaction.Service
	categorizeSvc *categorize.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service, categorizeSvc *categorize.Service) *Handler {
	return &Handler{
		importSvc:     importSvc,
		txSvc:         txSvc,
		categorizeSvc: categorizeSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importedTransaction struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []importedTransaction `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		source = importer.SourceStatement
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for i, p := range params {
		suggested, err := h.categorizeSvc.Suggest(r.Context(), p.Description)
		if err != nil || suggested == "" {
			continue
		}

		params[i].Category = suggested
	}

	txs, err := h.txSvc.RecordBatch(r.Context(), sess, params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importSuccessResponse{
		Imported:     len(txs),
		Transactions: make([]importedTransaction, 0, len(txs)),
	}

	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, importedTransaction{
			ID:          tx.ID.String(),
			Amount:      tx.Amount,
			Type:        string(tx.Type),
			Description: tx.Description,
			Category:    tx.Category,
			DueDate:     tx.DueDate.Format("2006-01-02"),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
