// Package prometheus serves the process metrics and a health summary of the
// automaton run over HTTP.
package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "prometheus")

// StatusReporter is anything able to report its health.
type StatusReporter interface {
	// Status returns error if the component is not considered healthy.
	Status() error
}

// Service provides Prometheus metrics via the /metrics route and component
// health via /healthz. The /metrics route shows all the metrics registered
// with the Prometheus DefaultRegisterer.
type Service struct {
	server     *http.Server
	lock       sync.RWMutex
	reporters  map[string]StatusReporter
	failStatus error
}

// NewService sets up a new instance for a given address host:port.
// An empty host will match with any IP so an address like ":2121" is perfectly acceptable.
func NewService(addr string) *Service {
	s := &Service{reporters: make(map[string]StatusReporter)}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", s.healthzHandler)

	s.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: time.Second}

	return s
}

// Register adds a component to the health report.
func (s *Service) Register(name string, r StatusReporter) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.reporters[name] = r
}

// Statuses returns the current status of every registered component.
func (s *Service) Statuses() map[string]error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	m := make(map[string]error, len(s.reporters))
	for name, r := range s.reporters {
		m[name] = r.Status()
	}
	return m
}

func (s *Service) healthzHandler(w http.ResponseWriter, r *http.Request) {
	statuses := s.Statuses()
	names := make([]string, 0, len(statuses))
	for name := range statuses {
		names = append(names, name)
	}
	sort.Strings(names)

	hasError := false
	report := make([]componentStatus, 0, len(names))
	for _, name := range names {
		status := "OK"
		if err := statuses[name]; err != nil {
			hasError = true
			status = "ERROR " + err.Error()
		}
		report = append(report, componentStatus{Name: name, Status: status})
	}

	code := http.StatusOK
	if hasError {
		code = http.StatusInternalServerError
	}
	if err := writeResponse(w, r, code, report); err != nil {
		log.Errorf("Could not write healthz body %v", err)
	}
}

// Start the prometheus service.
func (s *Service) Start() {
	log.WithField("endpoint", s.server.Addr).Info("Starting service")
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Errorf("Could not listen to host:port :%s: %v", s.server.Addr, err)
			s.lock.Lock()
			s.failStatus = err
			s.lock.Unlock()
		}
	}()
}

// Stop the service gracefully.
func (s *Service) Stop() error {
	log.Info("Stopping service")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Status checks for any service failure conditions.
func (s *Service) Status() error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.failStatus != nil {
		return fmt.Errorf("metrics server failed: %w", s.failStatus)
	}
	return nil
}
