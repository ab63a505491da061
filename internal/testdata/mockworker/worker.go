package mockworker

import (
	"github.com/stretchr/testify/mock"

	"marketing-performance-service/internal/model"
)

type Worker struct {
	mock.Mock
}

func (m *Worker) Enqueue(rec model.AnalyticsRecord) {
	m.Called(rec)
}

func (m *Worker) Shutdown() {
	m.Called()
}
