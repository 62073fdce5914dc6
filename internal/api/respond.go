package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Every response is a JSON envelope with at least a message and, for
// successful data-carrying responses, a result.

func respondOK(c *gin.Context, message string, result interface{}) {
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"message": message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "result": result})
}

func respondCreated(c *gin.Context, message string, result interface{}) {
	if result == nil {
		c.JSON(http.StatusCreated, gin.H{"message": message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message, "result": result})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondInternal shapes unexpected failures, mapping a missing record to
// 404 instead of 500.
func respondInternal(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "not found")
		return
	}
	respondError(c, http.StatusInternalServerError, fmt.Sprintf("an error occurred: %v", err))
}
