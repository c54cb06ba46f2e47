package nav

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	adminnav "github.com/goliatone/go-admin-nav/nav"
	"github.com/goliatone/go-admin-nav/internal/logging"
	"github.com/goliatone/go-admin-nav/pkg/interfaces"
)

// SessionState tracks where an editing session is in its lifecycle.
type SessionState string

const (
	SessionUninitialized SessionState = "uninitialized"
	SessionEditing       SessionState = "editing"
	SessionSaving        SessionState = "saving"
)

var (
	ErrSessionNotReady    = errors.New("nav: session not initialized")
	ErrSessionBusy        = errors.New("nav: session save in progress")
	ErrGroupNotFound      = errors.New("nav: group not found")
	ErrItemNotFound       = errors.New("nav: item not found")
	ErrGroupTitleRequired = errors.New("nav: group title required")
	ErrGroupIDRequired    = errors.New("nav: group id required")
	ErrGroupExists        = errors.New("nav: group id already in use")
	ErrItemInvalid        = errors.New("nav: item requires href and label")
	ErrDeleteNotConfirmed = errors.New("nav: destructive action requires confirmation")
	ErrIndexOutOfRange    = errors.New("nav: index out of range")
)

// DefaultItemIcon is assigned to newly created items without an explicit icon.
const DefaultItemIcon = "file-text"

// CreateGroupInput captures a new custom group.
type CreateGroupInput struct {
	ID               string
	Title            LocalizedString
	DefaultCollapsed bool
}

// UpdateGroupInput edits a group's display properties. The id is immutable
// once a group exists.
type UpdateGroupInput struct {
	ID               string
	Title            LocalizedString
	DefaultCollapsed bool
}

// DeleteGroupRequest removes a group and everything in it. The caller must
// set Confirmed after prompting the user.
type DeleteGroupRequest struct {
	ID        string
	Confirmed bool
}

// ItemInput captures a created or edited item.
type ItemInput struct {
	ID          string
	Href        string
	Label       LocalizedString
	Icon        string
	MatchPrefix bool
	Children    []NavItem
}

// Session is a mutable working copy of one user's layout. All edits stay in
// memory until Save; Reset discards both the working copy and the stored
// preference. Methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	state    SessionState
	groups   []NavGroup
	baseline []NavGroup

	service Service
	userID  uuid.UUID
	logger  interfaces.Logger
	newID   func() string
}

// SessionOption configures a session.
type SessionOption func(*Session)

// WithSessionLogger overrides the session logger.
func WithSessionLogger(logger interfaces.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithItemIDGenerator overrides how new item ids are minted.
func WithItemIDGenerator(generator func() string) SessionOption {
	return func(s *Session) {
		if generator != nil {
			s.newID = generator
		}
	}
}

// NewSession constructs an editing session for one user.
func NewSession(service Service, userID uuid.UUID, opts ...SessionOption) *Session {
	s := &Session{
		state:   SessionUninitialized,
		service: service,
		userID:  userID,
		logger:  logging.NoOp(),
		newID: func() string {
			return fmt.Sprintf("item-%d", time.Now().UnixMilli())
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the user's reconciled layout into the working copy and moves the
// session to editing.
func (s *Session) Init(ctx context.Context) error {
	result, err := s.service.Load(ctx, s.userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = CloneGroups(result.Groups)
	s.baseline = CloneGroups(result.Groups)
	s.state = SessionEditing
	return nil
}

// State reports the session lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Groups returns a deep copy of the working layout.
func (s *Session) Groups() []NavGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CloneGroups(s.groups)
}

// IsDirty reports whether the working copy diverges from the last loaded or
// saved layout.
func (s *Session) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !groupsEqual(s.groups, s.baseline)
}

func (s *Session) ready() error {
	switch s.state {
	case SessionEditing:
		return nil
	case SessionSaving:
		return ErrSessionBusy
	default:
		return ErrSessionNotReady
	}
}

func (s *Session) findGroup(groupID string) (int, error) {
	for i, group := range s.groups {
		if group.ID == groupID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
}

func (s *Session) findItem(groupIdx int, itemID string) (int, error) {
	for i, item := range s.groups[groupIdx].Items {
		if item.ID == itemID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// MoveGroup relocates the group at from to position to, keeping every other
// group in relative order.
func (s *Session) MoveGroup(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}
	if from < 0 || from >= len(s.groups) || to < 0 || to >= len(s.groups) {
		return ErrIndexOutOfRange
	}
	s.groups = MoveElement(s.groups, from, to)
	return nil
}

// MoveItem reorders an item inside its group.
func (s *Session) MoveItem(groupID string, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}
	idx, err := s.findGroup(groupID)
	if err != nil {
		return err
	}
	items := s.groups[idx].Items
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return ErrIndexOutOfRange
	}
	s.groups[idx].Items = MoveElement(items, from, to)
	return nil
}

// MoveItemToGroup removes the item from its source group and inserts it into
// the target group. With a target item id the insertion lands at that item's
// index; otherwise the item appends at the end. The item itself is unchanged.
func (s *Session) MoveItemToGroup(itemID, fromGroupID, toGroupID, targetItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}

	fromIdx, err := s.findGroup(fromGroupID)
	if err != nil {
		return err
	}
	toIdx, err := s.findGroup(toGroupID)
	if err != nil {
		return err
	}
	itemIdx, err := s.findItem(fromIdx, itemID)
	if err != nil {
		return err
	}

	moved := s.groups[fromIdx].Items[itemIdx]
	source := s.groups[fromIdx].Items
	s.groups[fromIdx].Items = append(source[:itemIdx], source[itemIdx+1:]...)

	target := s.groups[toIdx].Items
	insertAt := len(target)
	if targetItemID != "" {
		for i, item := range target {
			if item.ID == targetItemID {
				insertAt = i
				break
			}
		}
	}
	inserted := make([]NavItem, 0, len(target)+1)
	inserted = append(inserted, target[:insertAt]...)
	inserted = append(inserted, moved)
	inserted = append(inserted, target[insertAt:]...)
	s.groups[toIdx].Items = inserted
	return nil
}

// ToggleGroupVisibility flips a group's visibility flag.
func (s *Session) ToggleGroupVisibility(groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}
	idx, err := s.findGroup(groupID)
	if err != nil {
		return err
	}
	s.groups[idx].Visible = adminnav.ToggleVisible(s.groups[idx].Visible)
	return nil
}

// ToggleItemVisibility flips an item's visibility flag.
func (s *Session) ToggleItemVisibility(groupID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}
	groupIdx, err := s.findGroup(groupID)
	if err != nil {
		return err
	}
	itemIdx, err := s.findItem(groupIdx, itemID)
	if err != nil {
		return err
	}
	item := &s.groups[groupIdx].Items[itemIdx]
	item.Visible = adminnav.ToggleVisible(item.Visible)
	return nil
}

// CreateGroup appends a new custom group. The id derives from the title when
// absent; both title and derived id must be non-empty and the id must be
// unique across the layout.
func (s *Session) CreateGroup(input CreateGroupInput) (*NavGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	if !input.Title.IsSet() {
		return nil, ErrGroupTitleRequired
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = SlugifyGroupName(input.Title.Resolve("", ""))
	}
	if id == "" {
		return nil, ErrGroupIDRequired
	}
	for _, group := range s.groups {
		if group.ID == id {
			return nil, fmt.Errorf("%w: %s", ErrGroupExists, id)
		}
	}

	visible := true
	group := NavGroup{
		ID:               id,
		Title:            input.Title,
		Items:            []NavItem{},
		Visible:          &visible,
		DefaultCollapsed: input.DefaultCollapsed,
	}
	s.groups = append(s.groups, group)
	created := group.Clone()
	return &created, nil
}

// UpdateGroup edits a group's title and collapse default. Ids never change.
func (s *Session) UpdateGroup(input UpdateGroupInput) (*NavGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	idx, err := s.findGroup(strings.TrimSpace(input.ID))
	if err != nil {
		return nil, err
	}
	if !input.Title.IsSet() {
		return nil, ErrGroupTitleRequired
	}
	s.groups[idx].Title = input.Title
	s.groups[idx].DefaultCollapsed = input.DefaultCollapsed
	updated := s.groups[idx].Clone()
	return &updated, nil
}

// DeleteGroup removes a group and all items it contains. The request must be
// confirmed; items are not reparented.
func (s *Session) DeleteGroup(req DeleteGroupRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}
	if !req.Confirmed {
		return ErrDeleteNotConfirmed
	}
	idx, err := s.findGroup(req.ID)
	if err != nil {
		return err
	}
	s.groups = append(s.groups[:idx], s.groups[idx+1:]...)
	return nil
}

// CreateItem appends a new item to a group. Href and label are required; a
// missing icon falls back to the generic document icon and new items start
// explicitly visible.
func (s *Session) CreateItem(groupID string, input ItemInput) (*NavItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	idx, err := s.findGroup(groupID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Href) == "" || !input.Label.IsSet() {
		return nil, ErrItemInvalid
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = s.newID()
	}
	icon := input.Icon
	if icon == "" {
		icon = DefaultItemIcon
	}

	visible := true
	item := NavItem{
		ID:          id,
		Href:        strings.TrimSpace(input.Href),
		Label:       input.Label,
		Icon:        icon,
		MatchPrefix: input.MatchPrefix,
		Children:    CloneItems(input.Children),
		Visible:     &visible,
	}
	s.groups[idx].Items = append(s.groups[idx].Items, item)
	created := item.Clone()
	return &created, nil
}

// UpdateItem replaces an item's editable fields in place, keeping its id and
// position.
func (s *Session) UpdateItem(groupID string, input ItemInput) (*NavItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	groupIdx, err := s.findGroup(groupID)
	if err != nil {
		return nil, err
	}
	itemIdx, err := s.findItem(groupIdx, input.ID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Href) == "" || !input.Label.IsSet() {
		return nil, ErrItemInvalid
	}

	item := &s.groups[groupIdx].Items[itemIdx]
	item.Href = strings.TrimSpace(input.Href)
	item.Label = input.Label
	if input.Icon != "" {
		item.Icon = input.Icon
	}
	item.MatchPrefix = input.MatchPrefix
	item.Children = CloneItems(input.Children)
	updated := item.Clone()
	return &updated, nil
}

// DeleteItem removes an item from its group.
func (s *Session) DeleteItem(groupID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}

	groupIdx, err := s.findGroup(groupID)
	if err != nil {
		return err
	}
	itemIdx, err := s.findItem(groupIdx, itemID)
	if err != nil {
		return err
	}
	items := s.groups[groupIdx].Items
	s.groups[groupIdx].Items = append(items[:itemIdx], items[itemIdx+1:]...)
	return nil
}

// ApplyChildren replaces an item's child list, normally from a committed
// child editor.
func (s *Session) ApplyChildren(groupID, itemID string, children []NavItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}

	groupIdx, err := s.findGroup(groupID)
	if err != nil {
		return err
	}
	itemIdx, err := s.findItem(groupIdx, itemID)
	if err != nil {
		return err
	}
	s.groups[groupIdx].Items[itemIdx].Children = CloneItems(children)
	return nil
}

// Save persists the working copy. On success the baseline advances to the
// saved layout; on failure the working copy is retained so the user can
// retry without losing edits.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if err := s.ready(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = SessionSaving
	snapshot := CloneGroups(s.groups)
	s.mu.Unlock()

	err := s.service.Save(ctx, s.userID, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionEditing
	if err != nil {
		s.logger.Error("nav session save failed", "user_id", s.userID.String(), "error", err)
		return err
	}
	s.baseline = snapshot
	return nil
}

// Reset discards the stored preference and the working copy, then reloads
// the default layout into a fresh editing state.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	if err := s.ready(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = SessionSaving
	s.mu.Unlock()

	err := s.service.Reset(ctx, s.userID)

	s.mu.Lock()
	if err != nil {
		s.state = SessionEditing
		s.mu.Unlock()
		return err
	}
	s.state = SessionUninitialized
	s.groups = nil
	s.baseline = nil
	s.mu.Unlock()

	return s.Init(ctx)
}

func groupsEqual(a, b []NavGroup) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !groupEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func groupEqual(a, b NavGroup) bool {
	if a.ID != b.ID || a.DefaultCollapsed != b.DefaultCollapsed {
		return false
	}
	if !labelEqual(a.Title, b.Title) || !boolPtrEqual(a.Visible, b.Visible) {
		return false
	}
	return itemsEqual(a.Items, b.Items)
}

func itemsEqual(a, b []NavItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !itemEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func itemEqual(a, b NavItem) bool {
	if a.ID != b.ID || a.Href != b.Href || a.Icon != b.Icon || a.MatchPrefix != b.MatchPrefix {
		return false
	}
	if !labelEqual(a.Label, b.Label) || !boolPtrEqual(a.Visible, b.Visible) {
		return false
	}
	return itemsEqual(a.Children, b.Children)
}

func labelEqual(a, b LocalizedString) bool {
	if a.IsMultiLang() != b.IsMultiLang() {
		return false
	}
	if !a.IsMultiLang() {
		return a.Resolve("", "") == b.Resolve("", "")
	}
	aEntries, bEntries := a.Entries(), b.Entries()
	if len(aEntries) != len(bEntries) {
		return false
	}
	for i := range aEntries {
		if aEntries[i] != bEntries[i] {
			return false
		}
	}
	return true
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
