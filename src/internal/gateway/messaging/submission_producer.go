package messaging

import (
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/pkg/kafka"
	"bank-sampah-service/src/pkg/log"
)

type SubmissionProducer struct {
	StatusProducer Producer[*model.SubmissionEvent]
}

func NewSubmissionProducer(producer kafka.Producer, log log.Log) *SubmissionProducer {
	return &SubmissionProducer{
		StatusProducer: Producer[*model.SubmissionEvent]{
			Producer: producer,
			Topic:    "submission-status",
			Log:      log,
		},
	}
}

func (s *SubmissionProducer) SendStatusChanged(event *model.SubmissionEvent) error {
	return s.StatusProducer.Send(event)
}
