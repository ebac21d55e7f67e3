package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Общее количество отправленных запросов",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"route"})
)

type target struct {
	route string
	path  func() string
}

func main() {
	baseURL := flag.String("target", "http://localhost:8080", "foodbank service base URL")
	locationID := flag.String("location", "", "pickup location id for timeslot queries")
	metricsAddr := flag.String("metrics", ":2112", "address for /metrics")
	pause := flag.Duration("pause", time.Second, "pause between requests")
	flag.Parse()

	targets := []target{
		{route: "/ping", path: func() string { return "/ping" }},
		{route: "/noshow/followups", path: func() string { return "/noshow/followups" }},
		{route: "/sms/balance", path: func() string { return "/sms/balance" }},
	}
	if *locationID != "" {
		targets = append(targets, target{
			route: "/locations/{id}/timeslots",
			path: func() string {
				day := time.Now().AddDate(0, 0, rand.IntN(14))
				return fmt.Sprintf("/locations/%s/timeslots?date=%s", *locationID, day.Format(time.DateOnly))
			},
		})
	}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		server := &http.Server{Addr: *metricsAddr, ReadHeaderTimeout: 5 * time.Second}
		if err := server.ListenAndServe(); err != nil {
			log.Printf("metrics server: %v", err)
		}
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		t := targets[rand.IntN(len(targets))]
		hit(client, *baseURL, t)
		time.Sleep(*pause)
	}
}

func hit(client *http.Client, baseURL string, t target) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(t.route).Observe(time.Since(start).Seconds())
	}()

	resp, err := client.Get(baseURL + t.path())
	if err != nil {
		requestsTotal.WithLabelValues(t.route, "error").Inc()
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	requestsTotal.WithLabelValues(t.route, strconv.Itoa(resp.StatusCode)).Inc()
}
