package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	codec "github.com/danilovkiri/dk_go_secret_decoder/internal/service/codec/v1"
	decoderService "github.com/danilovkiri/dk_go_secret_decoder/internal/service/decoder"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/decoder/v1"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/secretary/v1"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/storage/inmemory"
)

type HandlersTestSuite struct {
	suite.Suite
	storage       *inmemory.Storage
	processor     decoderService.Processor
	decodeHandler *DecodeHandler
	router        *chi.Mux
	ts            *httptest.Server
}

func (suite *HandlersTestSuite) SetupTest() {
	cfg := config.NewDefaultConfiguration()
	cfg.UserKey = "some-user-key"
	cfg.AuthKey = "user"
	cfg.BaseURL = "http://localhost:8080"
	suite.storage = inmemory.InitStorage()
	processor, err := decoder.InitDecoder(codec.NewSecretCodec(), suite.storage, nil, cfg)
	suite.Require().NoError(err)
	suite.processor = processor
	suite.decodeHandler, err = InitDecodeHandler(suite.processor, cfg)
	suite.Require().NoError(err)
	secretaryService, err := secretary.NewSecretaryService(cfg)
	suite.Require().NoError(err)
	cookieHandler, err := middleware.NewCookieHandler(secretaryService, cfg)
	suite.Require().NoError(err)
	suite.router = chi.NewRouter()
	suite.router.Get("/ping", suite.decodeHandler.HandlePingDB())
	suite.router.Get("/api/schemes", suite.decodeHandler.HandleGetSchemes())
	suite.router.Get("/api/internal/stats", suite.decodeHandler.HandleGetStats())
	suite.router.Group(func(r chi.Router) {
		r.Use(cookieHandler.CookieHandle)
		r.Post("/api/decode", suite.decodeHandler.HandlePostDecode())
		r.Post("/api/decode/batch", suite.decodeHandler.HandlePostDecodeBatch())
		r.Get("/api/user/decodes", suite.decodeHandler.HandleGetHistory())
		r.Get("/api/user/decodes/{recordID}", suite.decodeHandler.HandleGetHistoryRecord())
		r.Delete("/api/user/decodes", suite.decodeHandler.HandleDeleteHistory())
	})
	suite.ts = httptest.NewServer(suite.router)
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.ts.Close()
}

// TestHandlersTestSuite initializes test suite for being accessible
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) postDecode(client *resty.Client, encoded, vendor string) modeldto.ResponseDecode {
	var response modeldto.ResponseDecode
	_, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(modeldto.RequestDecode{EncryptedPassword: encoded, VendorType: vendor}).
		SetResult(&response).
		SetError(&response).
		Post(suite.ts.URL + "/api/decode")
	suite.Require().NoError(err)
	return response
}

func (suite *HandlersTestSuite) TestInitDecodeHandler_NilProcessor() {
	_, err := InitDecodeHandler(nil, config.NewDefaultConfiguration())
	suite.Error(err)
}

func (suite *HandlersTestSuite) TestHandlePostDecode() {
	// set tests' parameters
	type want struct {
		code      int
		success   bool
		plaintext string
		message   string
	}
	tests := []struct {
		name        string
		body        string
		contentType string
		want        want
	}{
		{
			name:        "Cisco Type 7",
			body:        `{"encryptedPassword":"094F471A1A0A","vendorType":"cisco-type7"}`,
			contentType: "application/json",
			want:        want{code: http.StatusOK, success: true, plaintext: "cisco"},
		},
		{
			name:        "Juniper Type 9",
			body:        `{"encryptedPassword":"$9$LbHX-wg4Z","vendorType":"juniper-type9"}`,
			contentType: "application/json",
			want:        want{code: http.StatusOK, success: true, plaintext: "lc"},
		},
		{
			name:        "Base64",
			body:        `{"encryptedPassword":"0J/QsNGA0L7Qu9GM","vendorType":"base64"}`,
			contentType: "application/json",
			want:        want{code: http.StatusOK, success: true, plaintext: "Пароль"},
		},
		{
			name:        "MD5 lookup",
			body:        `{"encryptedPassword":"5F4DCC3B5AA765D61D8327DEB882CF99","vendorType":"generic-md5"}`,
			contentType: "application/json",
			want:        want{code: http.StatusOK, success: true, plaintext: "password"},
		},
		{
			name:        "Malformed Cisco Type 7",
			body:        `{"encryptedPassword":"XYZ","vendorType":"cisco-type7"}`,
			contentType: "application/json",
			want:        want{code: http.StatusBadRequest, message: "invalid Cisco Type 7 format"},
		},
		{
			name:        "Unsupported scheme",
			body:        `{"encryptedPassword":"abc","vendorType":"fortinet"}`,
			contentType: "application/json",
			want:        want{code: http.StatusBadRequest, message: "unsupported scheme"},
		},
		{
			name:        "Empty text",
			body:        `{"encryptedPassword":"","vendorType":"base64"}`,
			contentType: "application/json",
			want:        want{code: http.StatusBadRequest, message: "empty encoded text"},
		},
	}

	// perform each test
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response modeldto.ResponseDecode
			client := resty.New()
			res, err := client.R().
				SetHeader("Content-Type", tt.contentType).
				SetBody(tt.body).
				SetResult(&response).
				SetError(&response).
				Post(suite.ts.URL + "/api/decode")
			if err != nil {
				t.Fatalf("Could not perform JSON POST request")
			}
			assert.Equal(t, tt.want.code, res.StatusCode())
			assert.Equal(t, tt.want.success, response.Success)
			assert.Equal(t, tt.want.plaintext, response.DecryptedPassword)
			assert.Equal(t, tt.want.message, response.Message)
			assert.NotEmpty(t, response.RecordID)
			assert.Equal(t, "http://localhost:8080/api/user/decodes/"+response.RecordID, response.RecordURL)
		})
	}
}

func (suite *HandlersTestSuite) TestHandlePostDecode_BadRequest() {
	tests := []struct {
		name        string
		body        string
		contentType string
	}{
		{name: "Not JSON", body: "094F471A1A0A", contentType: "text/plain"},
		{name: "Broken JSON", body: `{"encryptedPassword":`, contentType: "application/json"},
		{name: "Unknown field", body: `{"password":"x","vendorType":"base64"}`, contentType: "application/json"},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			res, err := resty.New().R().
				SetHeader("Content-Type", tt.contentType).
				SetBody(tt.body).
				Post(suite.ts.URL + "/api/decode")
			if err != nil {
				t.Fatalf("Could not perform POST request")
			}
			assert.Equal(t, http.StatusBadRequest, res.StatusCode())
		})
	}
	stats, err := suite.storage.GetStats(context.Background())
	suite.NoError(err)
	suite.Equal(0, stats.Records)
}

func (suite *HandlersTestSuite) TestHandlePostDecodeBatch() {
	var response []modeldto.ResponseBatchDecode
	res, err := resty.New().R().
		SetHeader("Content-Type", "application/json").
		SetBody([]modeldto.RequestBatchDecode{
			{CorrelationID: "a", EncryptedPassword: "0005170B0D55", VendorType: "cisco-type7"},
			{CorrelationID: "b", EncryptedPassword: "not base64!", VendorType: "base64"},
			{CorrelationID: "c", EncryptedPassword: "21232f297a57a5a743894a0e4a801fc3", VendorType: "generic-md5"},
		}).
		SetResult(&response).
		Post(suite.ts.URL + "/api/decode/batch")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Require().Len(response, 3)
	suite.Equal("a", response[0].CorrelationID)
	suite.Equal("admin", response[0].DecryptedPassword)
	suite.Equal("b", response[1].CorrelationID)
	suite.False(response[1].Success)
	suite.Equal("invalid Base64 format", response[1].Message)
	suite.Equal("c", response[2].CorrelationID)
	suite.Equal("admin", response[2].DecryptedPassword)

	res, err = resty.New().R().
		SetHeader("Content-Type", "application/json").
		SetBody("[]").
		Post(suite.ts.URL + "/api/decode/batch")
	suite.Require().NoError(err)
	suite.Equal(http.StatusBadRequest, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleGetSchemes() {
	var response modeldto.ResponseSchemes
	res, err := resty.New().R().SetResult(&response).Get(suite.ts.URL + "/api/schemes")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Equal([]string{"cisco-type7", "juniper-type9", "base64", "generic-md5"}, response.Schemes)
}

func (suite *HandlersTestSuite) TestHistory() {
	client := resty.New()

	// a fresh client has no history
	res, err := client.R().Get(suite.ts.URL + "/api/user/decodes")
	suite.Require().NoError(err)
	suite.Equal(http.StatusNoContent, res.StatusCode())

	first := suite.postDecode(client, "094F471A1A0A", "cisco-type7")
	second := suite.postDecode(client, "zzzz", "generic-md5")
	suite.postDecode(resty.New(), "094F471A1A0A", "cisco-type7")

	var records []modeldto.ResponseRecord
	res, err = client.R().SetResult(&records).Get(suite.ts.URL + "/api/user/decodes")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Require().Len(records, 2)
	suite.NotContains(string(res.Body()), "\"cisco\"")
	for _, record := range records {
		suite.Len(record.Fingerprint, 64)
	}

	var record modeldto.ResponseRecord
	res, err = client.R().
		SetPathParams(map[string]string{"recordID": second.RecordID}).
		SetResult(&record).
		Get(suite.ts.URL + "/api/user/decodes/{recordID}")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Equal("generic-md5", record.VendorType)
	suite.False(record.Success)
	suite.Equal("hash not found in known passwords database", record.Message)

	// records of other users are invisible
	res, err = resty.New().R().
		SetPathParams(map[string]string{"recordID": first.RecordID}).
		Get(suite.ts.URL + "/api/user/decodes/{recordID}")
	suite.Require().NoError(err)
	suite.Equal(http.StatusNotFound, res.StatusCode())

	var deleted modeldto.ResponseDeleted
	res, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody([]string{first.RecordID, "unknown"}).
		SetResult(&deleted).
		Delete(suite.ts.URL + "/api/user/decodes")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Equal(int64(1), deleted.Deleted)

	res, err = client.R().SetResult(&records).Get(suite.ts.URL + "/api/user/decodes")
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(second.RecordID, records[0].RecordID)
}

func (suite *HandlersTestSuite) TestHandleGetStats() {
	client := resty.New()
	suite.postDecode(client, "094F471A1A0A", "cisco-type7")
	suite.postDecode(client, "$9$", "juniper-type9")
	suite.postDecode(resty.New(), "YWRtaW4=", "base64")

	res, err := resty.New().R().Get(suite.ts.URL + "/api/internal/stats")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	var stats modeldto.ResponseStats
	suite.Require().NoError(json.Unmarshal(res.Body(), &stats))
	suite.Equal(modeldto.ResponseStats{Records: 3, Users: 2, Succeeded: 2}, stats)
}

func (suite *HandlersTestSuite) TestHandlePingDB() {
	res, err := resty.New().R().Get(suite.ts.URL + "/ping")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
}
