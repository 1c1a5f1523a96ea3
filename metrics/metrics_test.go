// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopByDefault(t *testing.T) {
	// counters work without initialization and register nothing
	Counter("noop_count").Add(1)
	CounterVec("noop_vec", []string{"label"}).AddWithLabel(1, map[string]string{"label": "x"})
}

func TestPrometheusCounters(t *testing.T) {
	InitializePrometheusMetrics()

	Counter("validations_ok").Add(3)
	CounterVec("validations_by_action", []string{"action"}).
		AddWithLabel(2, map[string]string{"action": "propose"})

	server := httptest.NewServer(HTTPHandler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "das_validations_ok 3")
	assert.Contains(t, string(body), `das_validations_by_action{action="propose"} 2`)
}
