package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

const (
	baseURL      = "http://127.0.0.1:8090"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numAuthors   = 50
	numReaders   = 500
)

var sorts = []string{"latest", "trust", "reputation", "trending"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

// articleCount tracks published ids so readers hit existing articles.
var articleCount atomic.Int64

func address(prefix byte, n int) string {
	return fmt.Sprintf("0x%c%039x", prefix, n)
}

func authorAddr(rng *rand.Rand) string { return address('a', rng.Intn(numAuthors)) }
func readerAddr(rng *rand.Rand) string { return address('b', rng.Intn(numReaders)) }

func main() {
	fmt.Println("=== Clarity Ledger Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n", numWorkers, testDuration)
	fmt.Printf("Authors: %d | Readers: %d\n\n", numAuthors, numReaders)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/config")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Registering authors ---")
	for i := 0; i < numAuthors; i++ {
		// 409 on a rerun against a persisted ledger is expected.
		doPost("POST /authors", "/authors", map[string]any{"address": address('a', i)}, http.StatusCreated, http.StatusConflict)
	}

	fmt.Println("\n--- Phase 2: Publishing (POST /articles) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doPublish(rng)
	})

	fmt.Println("\n--- Phase 3: Mixed load (40% writes, 60% reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doPublish(rng)
		case r < 0.20:
			return doVerify(rng)
		case r < 0.28:
			return doDonate(rng)
		case r < 0.30:
			return doProtocolDonate(rng)
		case r < 0.40:
			return doSubscribe(rng)
		case r < 0.75:
			return doGetArticles(rng)
		case r < 0.90:
			return doGetArticle(rng)
		default:
			return doGetAuthor(rng)
		}
	})

	fmt.Println("\n--- Phase 4: Read-heavy load (5% writes, 95% reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.05:
			return doDonate(rng)
		case r < 0.60:
			return doGetArticles(rng)
		case r < 0.85:
			return doGetArticle(rng)
		default:
			return doGetAuthor(rng)
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doPost(endpoint, path string, body any, ok ...int) result {
	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+path, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, !accepted(resp.StatusCode, ok)}
}

func doGet(endpoint, path string, ok ...int) result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + path)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, !accepted(resp.StatusCode, ok)}
}

func accepted(status int, ok []int) bool {
	for _, code := range ok {
		if status == code {
			return true
		}
	}
	return false
}

func doPublish(rng *rand.Rand) result {
	n := rng.Intn(1_000_000)
	body := map[string]any{
		"author":  authorAddr(rng),
		"title":   fmt.Sprintf("Report %d", n),
		"content": strings.Repeat(fmt.Sprintf("paragraph %d. ", n), rng.Intn(50)+1),
		"tags":    []string{sorts[rng.Intn(len(sorts))]},
	}
	r := doPost("POST /articles", "/articles", body, http.StatusCreated)
	if !r.err {
		articleCount.Add(1)
	}
	return r
}

func randomArticle(rng *rand.Rand) int64 {
	n := articleCount.Load()
	if n == 0 {
		return 1
	}
	return rng.Int63n(n) + 1
}

func doVerify(rng *rand.Rand) result {
	body := map[string]any{"articleId": randomArticle(rng), "verifier": readerAddr(rng)}
	// Verifying a flagged article answers 400.
	return doPost("POST /articles/verify", "/articles/verify", body, http.StatusOK, http.StatusBadRequest)
}

func doDonate(rng *rand.Rand) result {
	body := map[string]any{
		"donor":           readerAddr(rng),
		"author":          authorAddr(rng),
		"amount":          fmt.Sprintf("%d.%02d", rng.Intn(500)+1, rng.Intn(100)),
		"supportProtocol": rng.Float64() < 0.5,
		"isAnonymous":     rng.Float64() < 0.2,
	}
	return doPost("POST /donations", "/donations", body, http.StatusOK)
}

func doProtocolDonate(rng *rand.Rand) result {
	body := map[string]any{
		"donor":  readerAddr(rng),
		"amount": fmt.Sprintf("%d.%02d", rng.Intn(50)+1, rng.Intn(100)),
	}
	return doPost("POST /protocol-donations", "/protocol-donations", body, http.StatusOK)
}

func doSubscribe(rng *rand.Rand) result {
	body := map[string]any{"subscriber": readerAddr(rng), "author": authorAddr(rng)}
	return doPost("POST /subscriptions", "/subscriptions", body, http.StatusOK)
}

func doGetArticles(rng *rand.Rand) result {
	return doGet("GET /articles", "/articles?sort="+sorts[rng.Intn(len(sorts))], http.StatusOK)
}

func doGetArticle(rng *rand.Rand) result {
	return doGet("GET /article", fmt.Sprintf("/article?id=%d", randomArticle(rng)), http.StatusOK, http.StatusNotFound)
}

func doGetAuthor(rng *rand.Rand) result {
	return doGet("GET /author", "/author?address="+authorAddr(rng), http.StatusOK)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}


