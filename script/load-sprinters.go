package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/spf13/pflag"
)

// SprinterPayload is the body of POST /sprinters
type SprinterPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	RunningTime string `json:"runningTime"`
}

// TimePayload is the body of POST /sprinters/{firstName}/{lastName}/time
type TimePayload struct {
	Duration  string `json:"duration"`
	Operation string `json:"operation"`
}

// RequestResult contains metrics for a single request
type RequestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// LoadStats contains aggregated statistics
type LoadStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario describes one kind of request sent against a sprinter
type Scenario struct {
	Name      string
	Operation string // add, subtract or empty for a read
	Duration  string
}

func main() {
	concurrency := pflag.IntP("concurrency", "c", 5, "Number of concurrent goroutines")
	totalRequests := pflag.IntP("requests", "n", 100, "Total number of requests to make after registration")
	sprinterCount := pflag.IntP("sprinters", "s", 10, "Number of sprinters to register first")
	baseURL := pflag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := pflag.Int("delay", 50, "Delay between requests in milliseconds")
	pflag.Parse()

	scenarios := []Scenario{
		{"Add Second", "add", "0:00:01"},
		{"Add Minute", "add", "0:01:00"},
		{"Subtract Second", "subtract", "0:00:01"},
		{"Subtract Hour", "subtract", "1:00:00"},
		{"Read Best", "", ""},
		{"Read At Most", "", "0:30:00"},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Printf("Registering %d sprinters at %s\n", *sprinterCount, *baseURL)
	names := make([][2]string, 0, *sprinterCount)
	for i := 0; i < *sprinterCount; i++ {
		payload := SprinterPayload{
			FirstName:   fmt.Sprintf("Runner%d", i),
			LastName:    "Load",
			RunningTime: fmt.Sprintf("0:%02d:%02d", rand.Intn(60), rand.Intn(60)),
		}
		result := send(client, http.MethodPost, *baseURL+"/sprinters", payload, "Register")
		if result.Success || result.StatusCode == http.StatusConflict {
			names = append(names, [2]string{payload.FirstName, payload.LastName})
		}
	}
	if len(names) == 0 {
		fmt.Println("No sprinters could be registered, aborting")
		return
	}

	fmt.Printf("Scenarios: %d, concurrency: %d, requests: %d, delay: %d ms\n",
		len(scenarios), *concurrency, *totalRequests, *delayMs)

	stats := &LoadStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan RequestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, names, scenarios, jobs, results)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-done
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(client *http.Client, baseURL string, delayMs int, names [][2]string,
	scenarios []Scenario, jobs <-chan int, results chan<- RequestResult) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		name := names[rand.Intn(len(names))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		switch {
		case scenario.Operation != "":
			target := fmt.Sprintf("%s/sprinters/%s/%s/time", baseURL, url.PathEscape(name[0]), url.PathEscape(name[1]))
			results <- send(client, http.MethodPost, target, TimePayload{Duration: scenario.Duration, Operation: scenario.Operation}, scenario.Name)
		case scenario.Duration != "":
			results <- send(client, http.MethodGet, baseURL+"/sprinters?atMost="+url.QueryEscape(scenario.Duration), nil, scenario.Name)
		default:
			results <- send(client, http.MethodGet, baseURL+"/sprinters/best", nil, scenario.Name)
		}
	}
}

// send performs one request; 422 counts as success because subtracting past zero is an expected rejection
func send(client *http.Client, method, target string, payload any, scenario string) RequestResult {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return RequestResult{Scenario: scenario, Error: err}
		}
	}

	req, err := http.NewRequest(method, target, &body)
	if err != nil {
		return RequestResult{Scenario: scenario, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	result := RequestResult{Scenario: scenario, ResponseTime: time.Since(start)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode < 300 || resp.StatusCode == http.StatusUnprocessableEntity
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func (s *LoadStats) record(result RequestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

func printResults(stats *LoadStats) {
	if stats.TotalRequests == 0 || len(stats.ResponseTimes) == 0 {
		fmt.Println("No requests were made")
		return
	}

	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	avgResponseTime := stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))

	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	percentile := func(p int) time.Duration { return sorted[len(sorted)*p/100] }

	fmt.Println("\n================= LOAD RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Time:          %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("TPS:                 %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v  Min: %v  Max: %v\n", avgResponseTime, stats.MinResponseTime, stats.MaxResponseTime)
	fmt.Printf("P50: %v  P90: %v  P99: %v\n", percentile(50), percentile(90), percentile(99))

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-16s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
