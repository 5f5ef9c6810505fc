// Package metrics expõe métricas Prometheus da API e do cadastro de pessoas.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rafabene/pessoas-backend/internal/domain/ports"
)

// Collector registra métricas HTTP, de login e de eventos de pessoa
type Collector struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	pessoaEvents *prometheus.CounterVec
	logins       *prometheus.CounterVec
}

// NewCollector cria o Collector e registra as métricas em reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pessoas_http_requests_total",
			Help: "Total de requisições HTTP por rota e status",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pessoas_http_request_duration_seconds",
			Help:    "Latência das requisições HTTP (segundos)",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		pessoaEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pessoas_events_total",
			Help: "Escritas bem-sucedidas no cadastro por tipo",
		}, []string{"type"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pessoas_logins_total",
			Help: "Tentativas de login por resultado",
		}, []string{"result"}),
	}

	reg.MustRegister(c.requests, c.duration, c.pessoaEvents, c.logins)

	return c
}

// ObserveRequest registra uma requisição concluída
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordLogin registra o resultado de um login
func (c *Collector) RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.logins.WithLabelValues(result).Inc()
}

// Publish conta o evento; implementa ports.EventPublisher
func (c *Collector) Publish(_ context.Context, event ports.PessoaEvent) error {
	c.pessoaEvents.WithLabelValues(string(event.Type)).Inc()
	return nil
}

// Handler retorna o handler de scrape do Prometheus
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
