package service

import (
	"fmt"
	"sort"
	"strings"

	"chatserver/internal/entity"
	"chatserver/internal/keyspace"
	apperr "chatserver/pkg/errors"
)

type MockLogger struct{}

func (m *MockLogger) Logf(format string, v ...any) {
	_ = fmt.Sprintf(format, v...)
}

type mockUserRepo struct {
	users map[string]*entity.User
	fail  bool
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*entity.User)}
}

func (m *mockUserRepo) Create(user *entity.User) error {
	if m.fail {
		return apperr.ErrStore(fmt.Errorf("boom"))
	}
	if _, ok := m.users[user.Username]; ok {
		return apperr.ErrUsernameTaken
	}
	copied := *user
	m.users[user.Username] = &copied
	return nil
}

func (m *mockUserRepo) GetByUsername(username string) (*entity.User, error) {
	if m.fail {
		return nil, apperr.ErrStore(fmt.Errorf("boom"))
	}
	return m.users[username], nil
}

func (m *mockUserRepo) List() ([]*entity.User, error) {
	if m.fail {
		return nil, apperr.ErrStore(fmt.Errorf("boom"))
	}
	names := make([]string, 0, len(m.users))
	for name := range m.users {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*entity.User, 0, len(names))
	for _, name := range names {
		out = append(out, m.users[name])
	}
	return out, nil
}

func (m *mockUserRepo) SetOnline(username string, online, refreshLastActive bool) error {
	user, ok := m.users[username]
	if !ok {
		return apperr.ErrUserNotFound
	}
	user.Online = online
	return nil
}

type mockChannelRepo struct {
	channels map[string]*entity.Channel
}

func newMockChannelRepo() *mockChannelRepo {
	return &mockChannelRepo{channels: make(map[string]*entity.Channel)}
}

func (m *mockChannelRepo) Create(channel *entity.Channel) error {
	if _, ok := m.channels[channel.Name]; ok {
		return apperr.AlreadyExists("Channel already exists")
	}
	copied := *channel
	m.channels[channel.Name] = &copied
	return nil
}

func (m *mockChannelRepo) GetByName(name string) (*entity.Channel, error) {
	return m.channels[name], nil
}

func (m *mockChannelRepo) List() ([]entity.Channel, error) {
	names := make([]string, 0, len(m.channels))
	for name := range m.channels {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]entity.Channel, 0, len(names))
	for _, name := range names {
		out = append(out, *m.channels[name])
	}
	return out, nil
}

type mockMessageRepo struct {
	channelPosts map[string][]*entity.ChannelMessage
	threads      map[string][]*entity.DirectMessage
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{
		channelPosts: make(map[string][]*entity.ChannelMessage),
		threads:      make(map[string][]*entity.DirectMessage),
	}
}

func (m *mockMessageRepo) AppendChannelMessage(channelName string, message *entity.ChannelMessage) error {
	m.channelPosts[channelName] = append(m.channelPosts[channelName], message)
	return nil
}

func (m *mockMessageRepo) ListChannel(channelName string) ([]*entity.ChannelMessage, error) {
	return m.channelPosts[channelName], nil
}

func (m *mockMessageRepo) ListAllChannels() ([]*entity.ChannelMessage, error) {
	names := make([]string, 0, len(m.channelPosts))
	for name := range m.channelPosts {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []*entity.ChannelMessage
	for _, name := range names {
		out = append(out, m.channelPosts[name]...)
	}
	return out, nil
}

func (m *mockMessageRepo) AppendDirectMessage(message *entity.DirectMessage) error {
	key := keyspace.DMPartition(message.From, message.To)
	m.threads[key] = append(m.threads[key], message)
	return nil
}

func (m *mockMessageRepo) ListThread(userA, userB string) ([]*entity.DirectMessage, error) {
	return m.threads[keyspace.DMPartition(strings.ToLower(userA), strings.ToLower(userB))], nil
}
