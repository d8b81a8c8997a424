package main

import (
	crand "crypto/rand"
	"encoding/base64"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/rest/modeldto"
	codec "github.com/danilovkiri/dk_go_secret_decoder/internal/service/codec/v1"
)

// juniperSalts has one salt character per alphabet family.
var juniperSalts = []byte("QB7i")

func randStringBytes(n int) string {
	const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!#%"
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

// encodeRandom encodes plaintext with a scheme picked by i.
func encodeRandom(i int, plaintext string) (modeldto.RequestDecode, error) {
	switch i % 3 {
	case 0:
		encoded, err := codec.EncodeCiscoType7(plaintext, rand.Intn(16))
		return modeldto.RequestDecode{EncryptedPassword: encoded, VendorType: "cisco-type7"}, err
	case 1:
		encoded, err := codec.EncodeJuniperType9(plaintext, juniperSalts[rand.Intn(len(juniperSalts))], crand.Reader)
		return modeldto.RequestDecode{EncryptedPassword: encoded, VendorType: "juniper-type9"}, err
	default:
		encoded := base64.StdEncoding.EncodeToString([]byte(plaintext))
		return modeldto.RequestDecode{EncryptedPassword: encoded, VendorType: "base64"}, nil
	}
}

func main() {
	a := flag.String("a", "http://localhost:8080", "Server address")
	n := flag.Int("n", 20, "Iterations per endpoint")
	flag.Parse()
	address := *a
	iterations := *n

	const postDecode = "/api/decode"
	const postBatchDecode = "/api/decode/batch"
	const getSchemes = "/api/schemes"
	const getHistory = "/api/user/decodes"
	const deleteHistory = "/api/user/decodes"
	const ping = "/ping"

	rand.Seed(time.Now().UnixNano())
	client := resty.New().SetHeader("Content-Type", "application/json")

	// Performing ping loading
	log.Println("Performing ping loading")
	for i := 0; i < iterations; i++ {
		if _, err := client.R().Get(address + ping); err != nil {
			log.Fatal(err)
		}
	}
	if _, err := client.R().Get(address + getSchemes); err != nil {
		log.Fatal(err)
	}

	// Performing postDecode loading
	log.Println("Performing postDecode loading")
	var recordIDs []string
	mismatches := 0
	for i := 0; i < iterations; i++ {
		plaintext := randStringBytes(12)
		request, err := encodeRandom(i, plaintext)
		if err != nil {
			log.Fatal(err)
		}
		var response modeldto.ResponseDecode
		res, err := client.R().SetBody(request).SetResult(&response).SetError(&response).Post(address + postDecode)
		if err != nil {
			log.Fatal(err)
		}
		if res.StatusCode() != http.StatusOK || response.DecryptedPassword != plaintext {
			mismatches++
			log.Println("Mismatch for", request.VendorType, request.EncryptedPassword, response.Message)
		}
		recordIDs = append(recordIDs, response.RecordID)
	}
	log.Println("Decode mismatches:", mismatches)

	// Performing postBatchDecode loading
	log.Println("Performing postBatchDecode loading")
	for i := 0; i < iterations; i++ {
		batch := make([]modeldto.RequestBatchDecode, 0, 3)
		for j := 0; j < 3; j++ {
			request, err := encodeRandom(j, randStringBytes(8))
			if err != nil {
				log.Fatal(err)
			}
			batch = append(batch, modeldto.RequestBatchDecode{
				CorrelationID:     randStringBytes(6),
				EncryptedPassword: request.EncryptedPassword,
				VendorType:        request.VendorType,
			})
		}
		if _, err := client.R().SetBody(batch).Post(address + postBatchDecode); err != nil {
			log.Fatal(err)
		}
	}

	// Performing getHistory loading
	log.Println("Performing getHistory loading")
	for i := 0; i < iterations; i++ {
		res, err := client.R().Get(address + getHistory)
		if err != nil {
			log.Fatal(err)
		}
		if i == 0 {
			log.Println("History size in bytes:", len(res.Body()))
		}
	}

	// Performing deleteHistory loading
	log.Println("Performing deleteHistory loading")
	for _, recordID := range recordIDs {
		if _, err := client.R().SetBody([]string{recordID}).Delete(address + deleteHistory); err != nil {
			log.Fatal(err)
		}
	}
}
