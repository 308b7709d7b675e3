//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vendor_notification_test
package vendor_notification

import (
	"github.com/IBM/sarama"
)

type producer interface {
	SendMessages(msgs []*sarama.ProducerMessage) error
}
