package api

import (
	"context"
	"net/http"
	"net/url"
)

// StartFluencyTest opens a fluency test and returns its id.
func (c *Client) StartFluencyTest(ctx context.Context) (*StartFluencyResult, error) {
	var res StartFluencyResult
	if err := c.do(ctx, http.MethodPost, "/fluency/test", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type analyzeFluencyRequest struct {
	TestID        string  `json:"test_id"`
	Transcript    string  `json:"transcript"`
	AudioDuration float64 `json:"audio_duration,omitempty"`
}

// AnalyzeFluency submits a speech transcript for scoring.
func (c *Client) AnalyzeFluency(ctx context.Context, testID, transcript string, audioDuration float64) (*FluencyResult, error) {
	req := analyzeFluencyRequest{TestID: testID, Transcript: transcript, AudioDuration: audioDuration}
	var res FluencyResult
	if err := c.do(ctx, http.MethodPost, "/fluency/analyze", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// FluencyScore fetches the stored result of an analyzed test.
func (c *Client) FluencyScore(ctx context.Context, testID string) (*FluencyResult, error) {
	var res FluencyResult
	if err := c.do(ctx, http.MethodGet, "/fluency/score/"+url.PathEscape(testID), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
