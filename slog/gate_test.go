package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	bookmark "github.com/Lawliet-3/mini-bookmark"
	"github.com/Lawliet-3/mini-bookmark/mock"
	bmslog "github.com/Lawliet-3/mini-bookmark/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingGate_LogsDecision(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	gate := bmslog.NewLoggingGate(&mock.PolicyGate{
		AllowedFn: func(ctx context.Context, url string) (bool, error) {
			return false, nil
		},
	}, logger)

	allowed, err := gate.Allowed(context.Background(), "https://example.com/private/x")

	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Contains(t, buf.String(), "policy check")
	assert.Contains(t, buf.String(), "allowed=false")
	assert.Contains(t, buf.String(), "https://example.com/private/x")
}

func TestLoggingClassifier_LogsPageType(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	classifier := bmslog.NewLoggingClassifier(&mock.Classifier{
		ClassifyFn: func(page *bookmark.RenderedPage) bookmark.PageType {
			return bookmark.PageTypeList
		},
	}, logger)

	got := classifier.Classify(&bookmark.RenderedPage{FinalURL: "https://example.com/news"})

	assert.Equal(t, bookmark.PageTypeList, got)
	assert.Contains(t, buf.String(), "classification")
	assert.Contains(t, buf.String(), "type=list")
}
