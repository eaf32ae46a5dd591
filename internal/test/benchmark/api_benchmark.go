package benchmark

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIBenchmark 并发请求同一接口并统计耗时
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	Client      *resty.Client
}

// BenchmarkResult 压测结果
type BenchmarkResult struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	MinTime        time.Duration `json:"min_time"`
	MaxTime        time.Duration `json:"max_time"`
	P50            time.Duration `json:"p50"`
	P95            time.Duration `json:"p95"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
}

type sample struct {
	duration   time.Duration
	statusCode int
	err        error
}

// NewAPIBenchmark 创建压测实例，authToken 为空时不带认证头
func NewAPIBenchmark(baseURL string, concurrency, requests int, authToken string) *APIBenchmark {
	if concurrency <= 0 {
		concurrency = 1
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")
	if authToken != "" {
		client.SetAuthToken(authToken)
	}
	return &APIBenchmark{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		Client:      client,
	}
}

// RunGET 压测 GET 接口
func (b *APIBenchmark) RunGET(path string) *BenchmarkResult {
	return b.run(resty.MethodGet, path, nil)
}

// RunPOST 压测 POST 接口
func (b *APIBenchmark) RunPOST(path string, payload interface{}) *BenchmarkResult {
	return b.run(resty.MethodPost, path, payload)
}

// run 固定数量的 worker 分摊 Requests 个请求
func (b *APIBenchmark) run(method, path string, payload interface{}) *BenchmarkResult {
	jobs := make(chan struct{})
	samples := make(chan sample, b.Requests)

	var wg sync.WaitGroup
	for i := 0; i < b.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				samples <- b.do(method, path, payload)
			}
		}()
	}

	started := time.Now()
	for i := 0; i < b.Requests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()
	close(samples)
	elapsed := time.Since(started)

	result := &BenchmarkResult{
		URL:           b.BaseURL + path,
		Method:        method,
		Concurrency:   b.Concurrency,
		TotalRequests: b.Requests,
		TotalTime:     elapsed,
		StatusCodes:   make(map[int]int),
	}
	if elapsed > 0 {
		result.RequestsPerSec = float64(b.Requests) / elapsed.Seconds()
	}

	durations := make([]time.Duration, 0, b.Requests)
	for s := range samples {
		if s.err != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, s.err.Error())
			continue
		}
		durations = append(durations, s.duration)
		result.StatusCodes[s.statusCode]++
		if s.statusCode >= 200 && s.statusCode < 300 {
			result.SuccessCount++
		} else {
			result.FailureCount++
		}
	}
	result.summarize(durations)
	return result
}

func (b *APIBenchmark) do(method, path string, payload interface{}) sample {
	req := b.Client.R()
	if payload != nil {
		req.SetBody(payload)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		return sample{err: err}
	}
	return sample{duration: time.Since(start), statusCode: resp.StatusCode()}
}

// summarize 计算耗时分布
func (r *BenchmarkResult) summarize(durations []time.Duration) {
	if len(durations) == 0 {
		return
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	var total time.Duration
	for _, d := range durations {
		total += d
	}
	r.AverageTime = total / time.Duration(len(durations))
	r.MinTime = durations[0]
	r.MaxTime = durations[len(durations)-1]
	r.P50 = percentile(durations, 50)
	r.P95 = percentile(durations, 95)
}

// percentile 已排序耗时的近似分位数
func percentile(sorted []time.Duration, p int) time.Duration {
	idx := (len(sorted)*p + 99) / 100
	if idx < 1 {
		idx = 1
	}
	return sorted[idx-1]
}

// SuccessRate 成功请求占比(%)
func (r *BenchmarkResult) SuccessRate() float64 {
	if r.TotalRequests == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(r.TotalRequests) * 100
}

// PrintResult 打印压测结果
func (r *BenchmarkResult) PrintResult() {
	fmt.Printf("%s %s 并发=%d 请求=%d 成功=%d 失败=%d\n",
		r.Method, r.URL, r.Concurrency, r.TotalRequests, r.SuccessCount, r.FailureCount)
	fmt.Printf("  总耗时=%s 平均=%s 最小=%s 最大=%s P50=%s P95=%s QPS=%.2f\n",
		r.TotalTime, r.AverageTime, r.MinTime, r.MaxTime, r.P50, r.P95, r.RequestsPerSec)

	codes := make([]int, 0, len(r.StatusCodes))
	for code := range r.StatusCodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("  状态码 %d: %d\n", code, r.StatusCodes[code])
	}

	for i, err := range r.Errors {
		if i >= 5 {
			fmt.Printf("  ... 还有 %d 个错误\n", len(r.Errors)-5)
			break
		}
		fmt.Printf("  错误: %s\n", err)
	}
}
