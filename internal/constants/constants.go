package constants

// 队列与任务常量
const (
	QueueDefault         = "default"
	TaskInventoryRestock = "inventory:restock"
)
