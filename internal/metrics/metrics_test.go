package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(Expiries.WithLabelValues("hydration", PathCatchUp))
	Expiries.WithLabelValues("hydration", PathCatchUp).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Expiries.WithLabelValues("hydration", PathCatchUp)))

	dropped := testutil.ToFloat64(NotificationsDropped)
	NotificationsDropped.Inc()
	assert.Equal(t, dropped+1, testutil.ToFloat64(NotificationsDropped))
}

func TestHandlerServesLifeboostMetrics(t *testing.T) {
	StorageFaults.WithLabelValues("get").Inc()
	Register() // second registration must not panic

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	res, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "lifeboost_storage_faults_total"))
}
