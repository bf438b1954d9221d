package dto

// SubscriptionToggleData 订阅切换结果
type SubscriptionToggleData struct {
	Subscribed      bool  `json:"subscribed"`
	SubscriberCount int64 `json:"subscriber_count"`
}
