package entity

// ChannelMessage carries the author under both "sender" and "from";
// the browser client reads whichever is set.
type ChannelMessage struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Sender    string `json:"sender"`
	From      string `json:"from"`
	CreatedAt string `json:"createdAt"`
}

type DirectMessage struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}
