package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"echo-analytics/api/auth"
	"echo-analytics/etl"
	"echo-analytics/logger"
	"echo-analytics/repositories"
	"echo-analytics/schema"
	"echo-analytics/services"
)

// UploadFileHandler accepts a multipart spreadsheet, maps it to canonical
// records and ingests them with dedup-on-Link.
func UploadFileHandler(svc *services.UploadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "no file part"})
			return
		}
		if fileHeader.Filename == "" {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "no selected file"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}

		result, err := svc.HandleFile(c.Request.Context(), fileHeader.Filename, data)
		if err != nil {
			logger.Log.Errorf("upload failed for %s: %v", fileHeader.Filename, err)
			c.JSON(statusForError(err), gin.H{"status": "error", "message": err.Error()})
			return
		}

		logger.Log.Infof("data uploaded successfully: %s", fileHeader.Filename)
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Data uploaded successfully.",
			"result":  result,
		})
	}
}

// IssueTokenHandler returns a bearer token for the current UTC hour.
func IssueTokenHandler(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := tokens.Issue()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// TriggerDailyProcessHandler validates the hour-window token and acknowledges
// the trigger for the given date.
func TriggerDailyProcessHandler(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || tokens.Validate(token) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid or expired authentication token"})
			return
		}

		var payload struct {
			TodayDate string `json:"today_date"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		if payload.TodayDate == "" {
			payload.TodayDate = time.Now().UTC().Format("02-01-2006")
		}

		message := fmt.Sprintf("daily process triggered successfully for date: %s", payload.TodayDate)
		logger.Log.Info(message)
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": message})
	}
}

// RunProcessHandler runs the enrichment workflow synchronously and reports
// its summary. The workflow is not retried on failure; the operator
// re-triggers it after fixing the cause.
func RunProcessHandler(svc *services.ProcessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Run(c.Request.Context())
		if err != nil {
			logger.Log.Errorf("data processing workflow failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Data processing completed successfully!",
			"summary": summary,
		})
	}
}

// DownloadDataHandler streams the enriched collection as an xlsx attachment.
func DownloadDataHandler(svc *services.ExportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, count, err := svc.ExportXLSX(c.Request.Context())
		if err != nil {
			logger.Log.Errorf("export failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "no data found in the database"})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="exported_data.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}

func bearerToken(header string) string {
	if h, ok := strings.CutPrefix(header, "Bearer "); ok {
		return h
	}
	return header
}

// statusForError distinguishes malformed input (the caller's problem) from
// storage failures.
func statusForError(err error) int {
	switch {
	case errors.Is(err, etl.ErrUnsupportedFormat),
		errors.Is(err, etl.ErrBadTimestamp),
		errors.Is(err, schema.ErrUnknownSource):
		return http.StatusBadRequest
	case errors.Is(err, repositories.ErrStorageWrite):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
