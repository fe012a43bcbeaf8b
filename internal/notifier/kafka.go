package notifier

import (
	"log"

	"github.com/Shopify/sarama"
)

// KafkaNotifier publishes through an async producer so that Publish never
// blocks a request on broker I/O. Delivery failures are drained into the
// log and otherwise dropped.
type KafkaNotifier struct {
	producer sarama.AsyncProducer
}

func NewKafkaNotifier(clientID string, brokerAddrs []string) (*KafkaNotifier, error) {
	config := sarama.NewConfig()
	config.ClientID = clientID

	producer, err := sarama.NewAsyncProducer(brokerAddrs, config)
	if err != nil {
		return nil, err
	}

	n := &KafkaNotifier{producer: producer}
	go n.drainErrors()
	return n, nil
}

func (n *KafkaNotifier) Publish(topic, message string) {
	n.producer.Input() <- &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.StringEncoder(message),
	}
}

func (n *KafkaNotifier) Close() error {
	return n.producer.Close()
}

func (n *KafkaNotifier) drainErrors() {
	for err := range n.producer.Errors() {
		log.Printf("notifier: publish to %s failed: %v", err.Msg.Topic, err.Err)
	}
}
