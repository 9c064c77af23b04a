package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ikh/dicom-master/internal/models"
)

// NotifyReportReady posts the run summary to apiUrl as JSON.
func NotifyReportReady(ctx context.Context, apiUrl string, summary models.Summary) error {
	jsonPayload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status code: %d", resp.StatusCode)
	}

	return nil
}
