package gcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/application"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/domain"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/utils"
)

func TestReconcileAgainstFakeServer(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	c := newTestClient(t)

	// filter keys avoid hyphens so the fake server parses them
	def := domain.Definition{
		Name: "fake",
		Topics: []domain.Topic{
			{Project: "p", Name: "sourceevents"},
			{Project: "p", Name: "sourcebroadcast"},
		},
		Subscriptions: []domain.Subscription{
			{Project: "p", Name: "sourceevents-c1", Topic: domain.Topic{Project: "p", Name: "sourceevents"}, Filter: domain.AttributeFilter("clustername", "c1")},
			{Project: "p", Name: "sourcebroadcast-c1", Topic: domain.Topic{Project: "p", Name: "sourcebroadcast"}},
		},
	}

	r := application.NewReconciler(c)
	first := r.Reconcile(context.Background(), def)
	require.True(t, first.AllOK())
	require.Equal(t, 4, first.Count(domain.StatusCreated))

	second := r.Reconcile(context.Background(), def)
	require.True(t, second.AllOK())
	require.Equal(t, 4, second.Count(domain.StatusAlreadyExists))
}
