package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ui_automation/domain/entities"
)

func TestCollector_CountsScenarios(t *testing.T) {
	c := NewCollector()

	c.ScenarioFinished("slider", entities.StatusPassed, 1.2)
	c.ScenarioFinished("slider", entities.StatusPassed, 0.8)
	c.ScenarioFinished("drop_down", entities.StatusFailed, 3)
	c.FallbackUsed("drop_down")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.scenarios.WithLabelValues("slider", "passed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.scenarios.WithLabelValues("drop_down", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.fallbacks.WithLabelValues("drop_down")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.duration))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := NewCollector()
	c.StepFinished(entities.StepAct, "click", entities.StatusPassed, 0.05)
	c.ScenarioFinished("click", entities.StatusPassed, 0.4)

	path := filepath.Join(t.TempDir(), "ui_automation.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `ui_automation_scenarios_total{scenario="click",status="passed"} 1`), text)
	assert.Contains(t, text, `ui_automation_step_duration_seconds_count{action="click",kind="act",status="passed"} 1`)
}
