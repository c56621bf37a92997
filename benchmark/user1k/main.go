package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Load generator: registers maxUsers accounts over HTTP and fires prediction
// submissions plus read traffic concurrently. It also serves a local stub
// geocoder so the run never touches a public geocoding endpoint; start the
// service with AQI_GEOCODER_BASE_URL=http://127.0.0.1:10802/search first.

var maxUsers int = 1000
var httpHostPort string = "127.0.0.1:1080"
var stubGeocoderHostPort string = "127.0.0.1:10802"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var timesOfDay = []string{"morning", "afternoon", "evening", "night"}

func main() {
	go serveStubGeocoder()

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	tokens := make([]string, maxUsers)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxUsers; i++ {
		i := i
		wg.Add(1)
		go func() {
			tokens[i] = registerUser()
			fmt.Printf("\rregistered user %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxUsers; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(tokens[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers*3)/usedTime.Seconds(),
	)
}

func serveStubGeocoder() {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[{"lat":"13.0837","lon":"80.2702","display_name":"Chennai, Tamil Nadu, India"}]`)
	})
	if err := http.ListenAndServe(stubGeocoderHostPort, mux); err != nil {
		log.Fatal("stub geocoder failed to serve:", err)
	}
}

func registerUser() string {
	payload, _ := json.Marshal(map[string]string{
		"name":     "Bench User",
		"email":    uuid.NewString() + "@example.com",
		"password": "benchmark-pass",
	})

	resp, err := http.Post(
		fmt.Sprintf("http://%s/auth/register", httpHostPort),
		"application/json",
		bytes.NewReader(payload),
	)
	if err != nil {
		log.Fatal("register failed:", err)
	}
	defer resp.Body.Close()

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Fatal("register decode failed:", err)
	}
	return body.Token
}

func doAction(token string) {
	postPrediction(token)
	getPredictions(token)
	getNotifications(token)
}

func authedRequest(method, path, token string, body []byte) *http.Response {
	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewReader(body))
	if err != nil {
		log.Fatal("build request failed:", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal("request failed:", err)
	}
	return resp
}

func postPrediction(token string) {
	payload, _ := json.Marshal(map[string]string{
		"location":    "Chennai",
		"date":        time.Now().AddDate(0, 0, 1+rnd.Intn(7)).Format("2006-01-02"),
		"time_of_day": timesOfDay[rnd.Intn(len(timesOfDay))],
	})
	resp := authedRequest(http.MethodPost, "/api/predictions", token, payload)
	resp.Body.Close()
}

func getPredictions(token string) {
	resp := authedRequest(http.MethodGet, "/api/predictions", token, nil)
	resp.Body.Close()
}

func getNotifications(token string) {
	resp := authedRequest(http.MethodGet, "/api/notifications", token, nil)
	resp.Body.Close()
}
