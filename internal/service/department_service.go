package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/department-dto/internal/api/dto"
	"github.com/spec-kit/department-dto/internal/domain"
	"github.com/spec-kit/department-dto/internal/events"
	"github.com/spec-kit/department-dto/internal/observability"
)

// Operation names used for metrics.
const (
	OperationDepartmentJSON     = "department_json"
	OperationDepartmentsMatch   = "departments_match"
	OperationDescribeDepartment = "describe_department"
)

const unknownHead = "Unknown"

// DepartmentService builds department documents and compares them.
type DepartmentService struct {
	logger     *zap.Logger
	metrics    *observability.Metrics
	dispatcher events.Dispatcher
}

// DepartmentDependencies encapsulates collaborators of DepartmentService.
// Metrics and Dispatcher are optional.
type DepartmentDependencies struct {
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	Dispatcher events.Dispatcher
}

// NewDepartmentService constructs the service.
func NewDepartmentService(deps DepartmentDependencies) *DepartmentService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{
		logger:     logger,
		metrics:    deps.Metrics,
		dispatcher: deps.Dispatcher,
	}
}

// DepartmentJSON builds a department from the given names and returns its
// canonical JSON. A nil departmentHeadName leaves the head absent; a non-nil
// one is always turned into an Employee, so an empty head name fails.
func (s *DepartmentService) DepartmentJSON(ctx context.Context, departmentName string, departmentHeadName *string) (string, error) {
	json, err := s.departmentJSON(departmentName, departmentHeadName)
	s.metrics.RecordOperation(OperationDepartmentJSON, err)
	if err != nil {
		return "", err
	}

	s.logger.Info(fmt.Sprintf("Created department JSON for (departmentName=%s, employeeName=%s): %s",
		departmentName, formatOptional(departmentHeadName), json))
	s.publishCreated(ctx, departmentName, departmentHeadName, json)
	return json, nil
}

func (s *DepartmentService) departmentJSON(departmentName string, departmentHeadName *string) (string, error) {
	dept, err := buildDepartment(departmentName, departmentHeadName)
	if err != nil {
		return "", err
	}
	return dto.EncodeDepartment(dept)
}

// DeserializedDepartmentJSONMatches parses both documents independently and
// reports whether they describe equal departments. Any invalid document
// fails the call, even when both inputs are identical.
func (s *DepartmentService) DeserializedDepartmentJSONMatches(json, otherJSON string) (bool, error) {
	matches, err := deserializedMatch(json, otherJSON)
	s.metrics.RecordOperation(OperationDepartmentsMatch, err)
	if err != nil {
		s.logger.Debug("department json comparison failed", zap.Error(err))
		return false, err
	}
	return matches, nil
}

func deserializedMatch(json, otherJSON string) (bool, error) {
	dept, err := dto.DecodeDepartment(json)
	if err != nil {
		return false, err
	}
	other, err := dto.DecodeDepartment(otherJSON)
	if err != nil {
		return false, err
	}
	return dept.Equal(other), nil
}

// DescribeDepartment returns and logs a one line summary naming the
// department head, or "Unknown" when there is none.
func (s *DepartmentService) DescribeDepartment(departmentName string, departmentHeadName *string) (string, error) {
	dept, err := buildDepartment(departmentName, departmentHeadName)
	s.metrics.RecordOperation(OperationDescribeDepartment, err)
	if err != nil {
		return "", err
	}

	headName := unknownHead
	if head, ok := dept.Head(); ok {
		headName = head.Name()
	}
	description := fmt.Sprintf("The head of %s department is %s", dept.Name(), headName)
	s.logger.Info(description)
	return description, nil
}

func buildDepartment(departmentName string, departmentHeadName *string) (domain.Department, error) {
	builder := domain.NewDepartmentBuilder().Name(departmentName)
	if departmentHeadName != nil {
		head, err := domain.NewEmployee(*departmentHeadName)
		if err != nil {
			return domain.Department{}, err
		}
		builder = builder.Head(head)
	}
	return builder.Build()
}

func (s *DepartmentService) publishCreated(ctx context.Context, departmentName string, departmentHeadName *string, json string) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventDepartmentJSONCreated,
		Timestamp: time.Now().UTC(),
		Payload: events.DepartmentJSONCreatedPayload{
			DepartmentName: departmentName,
			HeadName:       departmentHeadName,
			JSON:           json,
		},
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("department event handlers failed", zap.String("event_id", event.ID), zap.Error(err))
	}
}

func formatOptional(value *string) string {
	if value == nil {
		return "null"
	}
	return *value
}
