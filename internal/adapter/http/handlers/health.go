package handlers

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/middleware"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
)

const (
	StatusOk   = "ok"
	StatusDown = "down"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	TaskStore string `json:"task_store"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	taskStore ports.TaskStore
}

func NewHealthHandler(taskStore ports.TaskStore) *HealthHandler {
	return &HealthHandler{taskStore: taskStore}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := 200
	message := StatusOk

	if !h.checkTaskStore(c.Request.Context()) {
		statusCode = 500
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	storeStatus := StatusDown
	if h.checkTaskStore(c.Request.Context()) {
		storeStatus = StatusOk
	}

	c.JSON(200, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			TaskStore: storeStatus,
		},
	})
}

func (h *HealthHandler) checkTaskStore(ctx context.Context) bool {
	if h.taskStore == nil {
		return false
	}
	_, err := h.taskStore.List(ctx)
	return err == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
