package types

// FeedRequest limit 缺省时为 20，超出范围时截断到 [1,100]
type FeedRequest struct {
	Sort  string `form:"sort"`
	Skip  int    `form:"skip" binding:"min=0"`
	Limit *int   `form:"limit"`
}
