package tavern

// BaseSpawnChance is the chance a spawn attempt brings a customer before
// event multipliers.
const BaseSpawnChance = 0.5

// Log messages
const (
	LogMsgPotionCrafted   = "Potion crafted"
	LogMsgRecipeMastered  = "Recipe mastered through practice"
	LogMsgCustomerArrived = "Customer arrived"
	LogMsgCustomerServed  = "Customer served"
	LogMsgCustomerLeft    = "Customer left"
	LogMsgCustomerGrumble = "Customer grumbling about the wait"
	LogMsgQueueFull       = "Customer turned away, tavern full"
)
