// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/decoder"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/modelcodec"
	storageErrors "github.com/danilovkiri/dk_go_secret_decoder/internal/storage/errors"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/modelstorage"
)

// maxBodySize limits request bodies; secrets are short.
const maxBodySize = 1 << 20

// DecodeHandler defines data structure handling and provides support for adding new implementations.
type DecodeHandler struct {
	processor decoder.Processor
	baseURL   string
	timeout   time.Duration
}

// InitDecodeHandler initializes a DecodeHandler object and sets its attributes.
func InitDecodeHandler(processor decoder.Processor, cfg *config.Config) (*DecodeHandler, error) {
	if processor == nil {
		return nil, fmt.Errorf("nil Decoder Service was passed to service Decode Handler initializer")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, err
	}
	return &DecodeHandler{processor: processor, baseURL: cfg.BaseURL, timeout: 500 * time.Millisecond}, nil
}

// HandlePostDecode accepts JSON as {"encryptedPassword":"...","vendorType":"..."} and provides client with
// JSON as {"success":...,"decryptedPassword":"...","vendorType":"...","message":"..."}.
func (h *DecodeHandler) HandlePostDecode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// set context timeout for timing DB operations
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "user is not identified", http.StatusUnauthorized)
			return
		}
		var request modeldto.RequestDecode
		if err := decodeJSONBody(w, r, &request); err != nil {
			log.Println("HandlePostDecode:", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("POST decode request detected for scheme", request.VendorType)
		req := modelcodec.DecodeRequest{EncodedText: request.EncryptedPassword, Scheme: modelcodec.Scheme(request.VendorType)}
		result, recordID, err := h.processor.Decode(ctx, req, userID)
		if err != nil {
			log.Println("HandlePostDecode:", err)
			writeStorageError(w, err)
			return
		}
		code := http.StatusOK
		if !result.Success {
			code = http.StatusBadRequest
		}
		writeJSON(w, code, h.toResponseDecode(request.VendorType, recordID, result))
	}
}

// HandlePostDecodeBatch accepts a JSON array of correlated decode requests and responds with a JSON
// array of correlated results in the same order.
func (h *DecodeHandler) HandlePostDecodeBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "user is not identified", http.StatusUnauthorized)
			return
		}
		var request []modeldto.RequestBatchDecode
		if err := decodeJSONBody(w, r, &request); err != nil {
			log.Println("HandlePostDecodeBatch:", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(request) == 0 {
			http.Error(w, "empty batch", http.StatusBadRequest)
			return
		}
		items := make([]modelcodec.BatchItem, 0, len(request))
		for _, entry := range request {
			items = append(items, modelcodec.BatchItem{
				CorrelationID: entry.CorrelationID,
				Request:       modelcodec.DecodeRequest{EncodedText: entry.EncryptedPassword, Scheme: modelcodec.Scheme(entry.VendorType)},
			})
		}
		results, err := h.processor.DecodeBatch(ctx, items, userID)
		if err != nil {
			log.Println("HandlePostDecodeBatch:", err)
			writeStorageError(w, err)
			return
		}
		response := make([]modeldto.ResponseBatchDecode, 0, len(results))
		for i, res := range results {
			response = append(response, modeldto.ResponseBatchDecode{
				CorrelationID:  res.CorrelationID,
				ResponseDecode: h.toResponseDecode(request[i].VendorType, res.RecordID, res.Result),
			})
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// HandleGetSchemes lists supported vendor types.
func (h *DecodeHandler) HandleGetSchemes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := modeldto.ResponseSchemes{}
		for _, scheme := range h.processor.Schemes() {
			response.Schemes = append(response.Schemes, string(scheme))
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// HandleGetHistory provides client with its decode history.
func (h *DecodeHandler) HandleGetHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "user is not identified", http.StatusUnauthorized)
			return
		}
		records, err := h.processor.HistoryByUserID(ctx, userID)
		if err != nil {
			log.Println("HandleGetHistory:", err)
			writeStorageError(w, err)
			return
		}
		if len(records) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		response := make([]modeldto.ResponseRecord, 0, len(records))
		for _, record := range records {
			response = append(response, toResponseRecord(record))
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// HandleGetHistoryRecord provides client with one of its history records.
func (h *DecodeHandler) HandleGetHistoryRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "user is not identified", http.StatusUnauthorized)
			return
		}
		recordID := chi.URLParam(r, "recordID")
		record, err := h.processor.HistoryRecord(ctx, recordID, userID)
		if err != nil {
			log.Println("HandleGetHistoryRecord:", err)
			writeStorageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponseRecord(record))
	}
}

// HandleDeleteHistory accepts a JSON array of record IDs and removes those owned by the client.
func (h *DecodeHandler) HandleDeleteHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "user is not identified", http.StatusUnauthorized)
			return
		}
		var recordIDs []string
		if err := decodeJSONBody(w, r, &recordIDs); err != nil {
			log.Println("HandleDeleteHistory:", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		deleted, err := h.processor.DeleteHistory(ctx, recordIDs, userID)
		if err != nil {
			log.Println("HandleDeleteHistory:", err)
			writeStorageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseDeleted{Deleted: deleted})
	}
}

// HandleGetStats provides trusted clients with history statistics.
func (h *DecodeHandler) HandleGetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		stats, err := h.processor.GetStats(ctx)
		if err != nil {
			log.Println("HandleGetStats:", err)
			writeStorageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseStats{
			Records:   stats.Records,
			Users:     stats.Users,
			Succeeded: stats.Succeeded,
		})
	}
}

// HandlePingDB checks storage availability.
func (h *DecodeHandler) HandlePingDB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.processor.PingDB(); err != nil {
			log.Println("HandlePingDB:", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (h *DecodeHandler) toResponseDecode(vendorType, recordID string, result modelcodec.DecodeResult) modeldto.ResponseDecode {
	response := modeldto.ResponseDecode{
		Success:           result.Success,
		DecryptedPassword: result.Plaintext,
		VendorType:        vendorType,
		Message:           result.FailureReason,
		RecordID:          recordID,
	}
	if recordID != "" {
		u, _ := url.Parse(h.baseURL)
		u.Path = path.Join(u.Path, "/api/user/decodes", recordID)
		response.RecordURL = u.String()
	}
	return response
}

func toResponseRecord(record modelstorage.DecodeRecord) modeldto.ResponseRecord {
	return modeldto.ResponseRecord{
		RecordID:    record.RecordID,
		VendorType:  record.Scheme,
		Fingerprint: record.Fingerprint,
		Success:     record.Success,
		Message:     record.FailureReason,
		CreatedAt:   record.CreatedAt,
	}
}

// decodeJSONBody checks the content type and deserializes a size-limited body into v.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return errors.New("invalid Content-Type")
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	resBody, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(resBody); err != nil {
		log.Println("writeJSON:", err)
	}
}

func writeStorageError(w http.ResponseWriter, err error) {
	var contextTimeoutExceededError *storageErrors.ContextTimeoutExceededError
	var notFoundError *storageErrors.NotFoundError
	switch {
	case errors.As(err, &contextTimeoutExceededError):
		w.WriteHeader(http.StatusGatewayTimeout)
	case errors.As(err, &notFoundError):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
