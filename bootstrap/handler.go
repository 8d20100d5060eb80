// Package bootstrap provides a Lambda handler that provisions the
// TimeSeries table as a one-shot deployment step.
package bootstrap

import (
	"context"
	"log/slog"

	"github.com/fossouo/YCSB-DynamoDB/provision"
	"github.com/fossouo/YCSB-DynamoDB/timeseries"
)

// Request is the invocation payload. Zero values fall back to the
// TimeSeries schema defaults.
type Request struct {
	// TableName overrides the default table name.
	TableName string `json:"tableName,omitempty"`

	// CreateAttempts overrides the create retry budget.
	CreateAttempts int `json:"createAttempts,omitempty"`

	// WaitAttempts overrides the poll retry budget.
	WaitAttempts int `json:"waitAttempts,omitempty"`
}

// Response reports the provisioned table and its final status.
type Response struct {
	TableName string `json:"tableName"`
	Status    string `json:"status"`
}

// Handler runs the provisioning workflow on invocation.
type Handler struct {
	prov   *provision.Provisioner
	logger *slog.Logger
}

// NewHandler creates a bootstrap handler.
func NewHandler(p *provision.Provisioner, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		prov:   p,
		logger: logger,
	}
}

// Handle provisions the TimeSeries table and reports its status.
// This function is designed to be used as an AWS Lambda handler.
func (h *Handler) Handle(ctx context.Context, req Request) (Response, error) {
	spec := timeseries.TableSpec()
	if req.TableName != "" {
		spec.Name = req.TableName
	}

	create := provision.DefaultRetryPolicy()
	if req.CreateAttempts > 0 {
		create.Attempts = req.CreateAttempts
	}
	wait := provision.DefaultRetryPolicy()
	if req.WaitAttempts > 0 {
		wait.Attempts = req.WaitAttempts
	}

	h.logger.Info("provisioning table", "table", spec.Name)
	if err := h.prov.Provision(ctx, spec, create, wait); err != nil {
		h.logger.Error("provisioning failed", "table", spec.Name, "error", err)
		return Response{}, err
	}

	status, err := h.prov.Status(ctx, spec.Name)
	if err != nil {
		return Response{}, err
	}
	return Response{
		TableName: spec.Name,
		Status:    string(status),
	}, nil
}
