package validation

import (
	"errors"
	"strings"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/dto"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput turns a bound request into a domain input.
// The date is deliberately not validated here: the classifier has a
// defined fallback for unparsable dates.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	in := domain.CreateTaskInput{
		Name:         name,
		Description:  req.Description,
		DateTime:     req.DateTime,
		RepeatDays:   req.RepeatDays,
		RepeatMonths: req.RepeatMonths,
		Invitee:      strings.TrimSpace(req.Invitee),
		Tags:         req.Tags,
		Reminder:     req.Reminder,
	}
	if req.Priority != nil {
		in.Priority = domain.Priority(*req.Priority)
	}
	if req.Status != nil {
		in.Status = domain.TaskStatus(*req.Status)
	}
	if req.Repeat != nil {
		in.Repeat = domain.Repeat(*req.Repeat)
	}
	if req.Type != nil {
		in.Type = domain.TaskType(*req.Type)
	}
	return in, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	if req.Name == nil && req.Description == nil && req.DateTime == nil &&
		req.Priority == nil && req.Status == nil && req.Repeat == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var in domain.UpdateTaskInput

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		in.Name = &name
	}
	in.Description = req.Description
	in.DateTime = req.DateTime
	if req.Priority != nil {
		value := domain.Priority(*req.Priority)
		in.Priority = &value
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		in.Status = &value
	}
	if req.Repeat != nil {
		value := domain.Repeat(*req.Repeat)
		in.Repeat = &value
	}
	return in, nil
}
