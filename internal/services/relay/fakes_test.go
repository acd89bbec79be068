package relay

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cortexa/relay/internal/domain/models"
	"github.com/cortexa/relay/internal/repository"
	"github.com/cortexa/relay/internal/services/presence"
)

type memoryUsers struct {
	mu        sync.Mutex
	users     map[string]models.User
	findErr   error
	insertErr error
	inserts   int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]models.User{}}
}

func (m *memoryUsers) FindUser(_ context.Context, userID string) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	if u, ok := m.users[userID]; ok {
		return []models.User{u}, nil
	}
	return []models.User{}, nil
}

func (m *memoryUsers) InsertUser(_ context.Context, userID, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	if _, ok := m.users[userID]; ok {
		return repository.ErrUserExists
	}
	m.inserts++
	m.users[userID] = models.User{UserID: userID, Name: name, Email: email, CreatedAt: time.Now()}
	return nil
}

// memoryChats mirrors the ordering rules of the SQL queries
type memoryChats struct {
	mu        sync.Mutex
	chats     []models.Chat
	insertErr error
	listed    []repository.ListOptions
}

func (m *memoryChats) ListChats(_ context.Context, userID string, opts repository.ListOptions) ([]models.Chat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listed = append(m.listed, opts)

	owned := []models.Chat{}
	for _, c := range m.chats {
		if c.UserID == userID {
			owned = append(owned, c)
		}
	}

	if opts.Limit <= 0 || len(owned) <= opts.Limit {
		return owned, nil
	}
	if opts.Recent {
		return owned[len(owned)-opts.Limit:], nil
	}
	return owned[:opts.Limit], nil
}

func (m *memoryChats) InsertChat(_ context.Context, userID, message, reply string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	m.chats = append(m.chats, models.Chat{
		ID:        int64(len(m.chats) + 1),
		UserID:    userID,
		Message:   message,
		Reply:     reply,
		CreatedAt: time.Now(),
	})
	return nil
}

func (m *memoryChats) seed(userID string, n int) {
	for i := 1; i <= n; i++ {
		_ = m.InsertChat(context.Background(), userID, fmt.Sprintf("m%d", i), fmt.Sprintf("r%d", i))
	}
}

type sentMessage struct {
	channelType string
	channelID   string
	text        string
	authorID    string
}

type fakePresence struct {
	mu         sync.Mutex
	users      map[string]presence.User
	findErr    error
	upsertErr  error
	channelErr error
	sendErr    error
	upserts    int
	channels   map[string]presence.ChannelData
	sent       []sentMessage
}

func newFakePresence() *fakePresence {
	return &fakePresence{
		users:    map[string]presence.User{},
		channels: map[string]presence.ChannelData{},
	}
}

func (f *fakePresence) FindUser(_ context.Context, userID string) ([]presence.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	if u, ok := f.users[userID]; ok {
		return []presence.User{u}, nil
	}
	return nil, nil
}

func (f *fakePresence) UpsertUser(_ context.Context, user presence.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	f.users[user.ID] = user
	return nil
}

func (f *fakePresence) EnsureChannel(_ context.Context, channelType, channelID string, data presence.ChannelData) (presence.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	key := channelType + ":" + channelID
	if _, ok := f.channels[key]; !ok {
		f.channels[key] = data
	}
	return &fakeChannel{presence: f, channelType: channelType, channelID: channelID}, nil
}

type fakeChannel struct {
	presence    *fakePresence
	channelType string
	channelID   string
}

func (c *fakeChannel) SendMessage(_ context.Context, text, authorID string) error {
	c.presence.mu.Lock()
	defer c.presence.mu.Unlock()
	if c.presence.sendErr != nil {
		return c.presence.sendErr
	}
	c.presence.sent = append(c.presence.sent, sentMessage{
		channelType: c.channelType,
		channelID:   c.channelID,
		text:        text,
		authorID:    authorID,
	})
	return nil
}

type fakeCompletion struct {
	mu          sync.Mutex
	reply       string
	err         error
	transcripts [][]models.ChatMessage
}

func (f *fakeCompletion) Complete(_ context.Context, transcript []models.ChatMessage) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transcripts = append(f.transcripts, transcript)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
