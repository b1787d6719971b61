package mq

type Header map[string]string

// Message 与具体消息队列无关的消息
type Message struct {
	Value []byte
	// 对标kafka中的key，用于分区
	Key    []byte
	Header Header
	Topic  string
	// 分区ID
	Partition int64
	Offset    int64
}
