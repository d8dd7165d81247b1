// Package keyspace maps chat entities onto the shared keyed collection.
// Every record lives under a composite (partition, sort) key:
//
//	user            / user#<name>        — one record per account
//	channel         / channel#<name>     — one record per channel
//	channel#<name>  / message#<iso>      — channel posts, timestamp-sorted
//	dm#<a>#<b>      / message#<iso>      — direct messages, canonical pair
//
// All functions are pure; they never touch storage.
package keyspace

import (
	"sort"
	"strings"
	"time"
)

const (
	UserPartition    = "user"
	ChannelPartition = "channel"

	userPrefix    = "user#"
	channelPrefix = "channel#"
	messagePrefix = "message#"
	dmPrefix      = "dm#"
	dmDelimiter   = "#"
)

// UserKey preserves username case as registered.
func UserKey(username string) (pk, sk string) {
	return UserPartition, userPrefix + username
}

func ChannelKey(name string) (pk, sk string) {
	return ChannelPartition, channelPrefix + name
}

// ChannelMessagesPartition holds every post of one channel. A range
// query over it comes back timestamp-ordered because the sort key is
// lexicographically ordered by the ISO instant.
func ChannelMessagesPartition(channelName string) string {
	return channelPrefix + channelName
}

func ChannelMessageKey(channelName, timestamp string) (pk, sk string) {
	return ChannelMessagesPartition(channelName), messagePrefix + timestamp
}

// AllChannelMessagesPrefix matches every channel-post partition, and no
// other record family.
func AllChannelMessagesPrefix() string {
	return channelPrefix
}

// DMPartition canonicalizes the participant pair: both usernames are
// lower-cased and sorted, so (A,B) and (B,A) share one partition.
func DMPartition(userA, userB string) string {
	pair := []string{strings.ToLower(userA), strings.ToLower(userB)}
	sort.Strings(pair)
	return dmPrefix + pair[0] + dmDelimiter + pair[1]
}

func DMMessageKey(userA, userB, timestamp string) (pk, sk string) {
	return DMPartition(userA, userB), messagePrefix + timestamp
}

// Timestamp renders t the way the client stores it: UTC, millisecond
// precision, trailing Z. Doubles as the message sort key, so two writes
// within the same millisecond collide; ties are not broken.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
