package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0"

func (h *Handlers) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Voice Cloning API Running", "version": apiVersion})
}

// HealthCheck 健康检查接口
func (h *Handlers) HealthCheck(c *gin.Context) {
	// 检查数据库连接
	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database connection failed"})
		return
	}
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database ping failed"})
		return
	}

	// 返回健康状态
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
