package coordinator_test

import (
	"context"
	"errors"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatshell/internal/application/port"
	portmocks "github.com/bnema/chatshell/internal/application/port/mocks"
	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/domain/repository"
	repomocks "github.com/bnema/chatshell/internal/domain/repository/mocks"
	"github.com/bnema/chatshell/internal/infrastructure/filesystem"
	"github.com/bnema/chatshell/internal/infrastructure/persistence/jsonfile"
	"github.com/bnema/chatshell/internal/logging"
	"github.com/bnema/chatshell/internal/ui/coordinator"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakeView struct {
	visible   bool
	zoom      float64
	reloads   int
	destroyed bool
}

func (v *fakeView) Load(context.Context, string) error { return nil }
func (v *fakeView) Reload(context.Context) error       { v.reloads++; return nil }
func (v *fakeView) SetVisible(visible bool)            { v.visible = visible }
func (v *fakeView) SetZoomLevel(level float64)         { v.zoom = level }
func (v *fakeView) Destroy()                           { v.destroyed = true }

type fakeEngine struct {
	views   map[string]*fakeView
	created []string
}

func (e *fakeEngine) CreateSession(_ context.Context, spec port.SessionSpec) (port.EngineSession, error) {
	v := &fakeView{}
	e.views[spec.AccountID] = v
	e.created = append(e.created, spec.AccountID)
	return v, nil
}

type recordingChrome struct {
	active    []string
	summaries [][]entity.AccountSummary
	unread    []bool
	presented int
}

func (c *recordingChrome) ActiveAccountChanged(_ context.Context, account entity.Account) {
	c.active = append(c.active, account.ID)
}

func (c *recordingChrome) AccountsChanged(_ context.Context, summary []entity.AccountSummary) {
	c.summaries = append(c.summaries, summary)
}

func (c *recordingChrome) UnreadChanged(_ context.Context, hasUnread bool) {
	c.unread = append(c.unread, hasUnread)
}

func (c *recordingChrome) Present(context.Context) { c.presented++ }

func (c *recordingChrome) lastSummary() []entity.AccountSummary {
	if len(c.summaries) == 0 {
		return nil
	}
	return c.summaries[len(c.summaries)-1]
}

type fixture struct {
	coord     *coordinator.SessionCoordinator
	accounts  *usecase.ManageAccountsUseCase
	engine    *fakeEngine
	chrome    *recordingChrome
	transport *portmocks.MockNotificationTransport
	idle      *portmocks.MockIdleInhibitor
	dialog    *portmocks.MockPermissionDialogPresenter
	activate  func(routingID string)
	dir       string
}

// queuedRunner holds background work until drain, like a busy worker pool.
type queuedRunner struct {
	work []func()
}

func (r *queuedRunner) Go(ctx context.Context, work func(ctx context.Context) func()) {
	r.work = append(r.work, func() {
		if cont := work(ctx); cont != nil {
			cont()
		}
	})
}

func (r *queuedRunner) drain() {
	for len(r.work) > 0 {
		next := r.work[0]
		r.work = r.work[1:]
		next()
	}
}

type fixtureOptions struct {
	repo   repository.AccountRepository
	runner port.BackgroundRunner
}

func newFixture(t *testing.T, settings coordinator.Settings) *fixture {
	t.Helper()
	return newFixtureWith(t, settings, fixtureOptions{})
}

func newFixtureWith(t *testing.T, settings coordinator.Settings, opts fixtureOptions) *fixture {
	t.Helper()
	dir := t.TempDir()
	if opts.repo == nil {
		opts.repo = jsonfile.NewAccountRepository(dir)
	}
	f := &fixture{
		accounts:  usecase.NewManageAccountsUseCase(opts.repo, filesystem.New(), dir),
		engine:    &fakeEngine{views: make(map[string]*fakeView)},
		chrome:    &recordingChrome{},
		transport: portmocks.NewMockNotificationTransport(t),
		idle:      portmocks.NewMockIdleInhibitor(t),
		dialog:    portmocks.NewMockPermissionDialogPresenter(t),
		dir:       dir,
	}
	f.transport.EXPECT().OnActivated(mock.Anything).Run(func(fn func(string)) {
		f.activate = fn
	}).Return().Maybe()

	ids := []string{"work", "home", "club"}
	coord, err := coordinator.NewSessionCoordinator(testContext(), coordinator.SessionCoordinatorConfig{
		Accounts:    f.accounts,
		Permissions: usecase.NewHandlePermissionUseCase(f.accounts, f.dialog),
		Zoom:        usecase.NewManageZoomUseCase(f.accounts),
		Engine:      f.engine,
		FileSystem:  filesystem.New(),
		Chrome:      f.chrome,
		Transport:   f.transport,
		Idle:        f.idle,
		Runner:      opts.runner,
		Settings:    settings,
		NewID: func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		},
	})
	require.NoError(t, err)
	f.coord = coord
	return f
}

func started(t *testing.T, settings coordinator.Settings) *fixture {
	t.Helper()
	f := newFixture(t, settings)
	require.NoError(t, f.coord.Start(testContext()))
	return f
}

func (f *fixture) account(t *testing.T, id string) *entity.Account {
	t.Helper()
	a, err := f.accounts.Get(testContext(), id)
	require.NoError(t, err)
	return a
}

func TestNewSessionCoordinator_RequiresCollaborators(t *testing.T) {
	_, err := coordinator.NewSessionCoordinator(testContext(), coordinator.SessionCoordinatorConfig{})
	require.Error(t, err)
}

func TestSessionCoordinator_StartShowsDefaultAccount(t *testing.T) {
	f := started(t, coordinator.DefaultSettings())

	assert.Equal(t, entity.DefaultAccountID, f.coord.ForegroundAccountID())
	assert.Equal(t, []string{entity.DefaultAccountID}, f.engine.created)
	assert.True(t, f.engine.views[entity.DefaultAccountID].visible)
	assert.InDelta(t, entity.ZoomDefault, f.engine.views[entity.DefaultAccountID].zoom, 1e-9)

	assert.Equal(t, []string{entity.DefaultAccountID}, f.chrome.active)
	require.Len(t, f.chrome.lastSummary(), 1)
	assert.Equal(t, []bool{false}, f.chrome.unread)
	assert.NotNil(t, f.activate)

	active, err := f.coord.ActiveAccount(testContext())
	require.NoError(t, err)
	assert.True(t, active.IsActive)
}

func TestSessionCoordinator_AddAndSwitchKeepsBackgroundWarm(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	added, err := f.coord.AddAccount(ctx, "", "", "💼")
	require.NoError(t, err)
	assert.Equal(t, "work", added.ID)
	assert.Equal(t, "Account 2", added.Name)
	assert.Equal(t, 1, added.Order)
	assert.False(t, added.IsActive)
	assert.Len(t, f.engine.created, 1, "adding does not create a session")

	require.NoError(t, f.coord.SwitchAccount(ctx, "work"))
	assert.Equal(t, "work", f.coord.ForegroundAccountID())
	assert.True(t, f.account(t, "work").IsActive)
	assert.False(t, f.account(t, entity.DefaultAccountID).IsActive)

	def := f.engine.views[entity.DefaultAccountID]
	assert.False(t, def.visible)
	assert.False(t, def.destroyed)
	assert.Equal(t, []string{entity.DefaultAccountID, "work"}, f.coord.Sessions())

	require.NoError(t, f.coord.SwitchAccount(ctx, entity.DefaultAccountID))
	assert.Len(t, f.engine.created, 2, "switching back reuses the warm session")
	assert.Equal(t, []string{entity.DefaultAccountID, "work", entity.DefaultAccountID}, f.chrome.active)
}

func TestSessionCoordinator_ZeroSettingsKeepSwitchedAwaySessionNotifying(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.Settings{})

	_, err := f.coord.AddAccount(ctx, "Work", "", "")
	require.NoError(t, err)
	require.NoError(t, f.coord.SwitchAccount(ctx, "work"))
	require.NoError(t, f.coord.SwitchAccount(ctx, entity.DefaultAccountID))

	workView := f.engine.views["work"]
	assert.False(t, workView.destroyed)
	assert.False(t, workView.visible)
	assert.Equal(t, []string{entity.DefaultAccountID, "work"}, f.coord.Sessions())

	f.transport.EXPECT().
		Deliver(mock.Anything, mock.MatchedBy(func(id string) bool { return strings.HasPrefix(id, "work:") }),
			"Alice", "lunch?", usecase.DefaultNotificationIcon).
		Return(port.PlatformNotificationID("n1"), nil).
		Once()
	f.coord.NotificationRaised(ctx, "work", port.RaisedNotification{Title: "Alice", Body: "lunch?"})

	assert.True(t, f.account(t, "work").HasUnread)
	assert.True(t, f.chrome.unread[len(f.chrome.unread)-1])
}

func TestSessionCoordinator_SwitchToUnknownAccountIsBenign(t *testing.T) {
	f := started(t, coordinator.DefaultSettings())

	require.NoError(t, f.coord.SwitchAccount(testContext(), "ghost"))
	assert.Equal(t, entity.DefaultAccountID, f.coord.ForegroundAccountID())
}

func TestSessionCoordinator_NotificationRoutesBackToAccount(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	_, err := f.coord.AddAccount(ctx, "Work", "", "")
	require.NoError(t, err)
	require.NoError(t, f.coord.SwitchAccount(ctx, "work"))
	require.NoError(t, f.coord.SwitchAccount(ctx, entity.DefaultAccountID))
	f.coord.WindowFocusChanged(ctx, true)

	var routingID string
	f.transport.EXPECT().
		Deliver(mock.Anything, mock.MatchedBy(func(id string) bool { return strings.HasPrefix(id, "work:msg-") }),
			"Alice", "see you at 5", usecase.DefaultNotificationIcon).
		Run(func(_ context.Context, id, _, _, _ string) { routingID = id }).
		Return(port.PlatformNotificationID("n1"), nil).
		Once()

	handle := portmocks.NewMockNotificationHandle(t)
	f.coord.NotificationRaised(ctx, "work", port.RaisedNotification{
		Title:  "Alice",
		Body:   "see you at 5",
		Handle: handle,
	})

	assert.True(t, f.account(t, "work").HasUnread)
	assert.True(t, f.chrome.unread[len(f.chrome.unread)-1])
	require.NotEmpty(t, routingID)

	handle.EXPECT().Click(mock.Anything).Once()
	f.activate(routingID)

	assert.Equal(t, "work", f.coord.ForegroundAccountID())
	assert.False(t, f.account(t, "work").HasUnread)
	assert.Equal(t, 1, f.chrome.presented)
	assert.False(t, f.chrome.unread[len(f.chrome.unread)-1])
}

func TestSessionCoordinator_NotificationForWatchedAccountStaysRead(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())
	f.coord.WindowFocusChanged(ctx, true)

	f.transport.EXPECT().Deliver(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(port.PlatformNotificationID("n1"), nil).Once()

	f.coord.NotificationRaised(ctx, entity.DefaultAccountID, port.RaisedNotification{Title: "Bob", Body: "hey"})
	assert.False(t, f.account(t, entity.DefaultAccountID).HasUnread)
}

func TestSessionCoordinator_SameTagReplacesDeliveredNotification(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	f.transport.EXPECT().Deliver(mock.Anything, "default:chat-1", mock.Anything, mock.Anything, mock.Anything).
		Return(port.PlatformNotificationID("n1"), nil).Once()
	f.coord.NotificationRaised(ctx, entity.DefaultAccountID, port.RaisedNotification{Body: "one", Tag: "chat-1"})

	f.transport.EXPECT().Withdraw(mock.Anything, port.PlatformNotificationID("n1")).Return(nil).Once()
	f.transport.EXPECT().Deliver(mock.Anything, "default:chat-1", mock.Anything, mock.Anything, mock.Anything).
		Return(port.PlatformNotificationID("n2"), nil).Once()
	f.coord.NotificationRaised(ctx, entity.DefaultAccountID, port.RaisedNotification{Body: "two", Tag: "chat-1"})

	f.transport.EXPECT().Withdraw(mock.Anything, port.PlatformNotificationID("n2")).Return(nil).Once()
	f.coord.WindowFocusChanged(ctx, true)
}

func TestSessionCoordinator_DeliveryInFlightDuringFocusIsWithdrawn(t *testing.T) {
	ctx := testContext()
	runner := &queuedRunner{}
	f := newFixtureWith(t, coordinator.DefaultSettings(), fixtureOptions{runner: runner})
	require.NoError(t, f.coord.Start(ctx))

	f.coord.NotificationRaised(ctx, entity.DefaultAccountID, port.RaisedNotification{Body: "late"})
	require.Len(t, runner.work, 1)

	f.coord.WindowFocusChanged(ctx, true)

	f.transport.EXPECT().Deliver(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(port.PlatformNotificationID("n1"), nil).Once()
	f.transport.EXPECT().Withdraw(mock.Anything, port.PlatformNotificationID("n1")).Return(nil).Once()
	runner.drain()

	// Nothing is left tracked for the next focus pass.
	f.coord.WindowFocusChanged(ctx, false)
	f.coord.WindowFocusChanged(ctx, true)
	runner.drain()
}

func TestSessionCoordinator_DeliveryInFlightWithoutFocusStaysTracked(t *testing.T) {
	ctx := testContext()
	runner := &queuedRunner{}
	f := newFixtureWith(t, coordinator.DefaultSettings(), fixtureOptions{runner: runner})
	require.NoError(t, f.coord.Start(ctx))

	f.coord.NotificationRaised(ctx, entity.DefaultAccountID, port.RaisedNotification{Body: "queued"})
	f.transport.EXPECT().Deliver(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(port.PlatformNotificationID("n1"), nil).Once()
	runner.drain()

	f.transport.EXPECT().Withdraw(mock.Anything, port.PlatformNotificationID("n1")).Return(nil).Once()
	f.coord.WindowFocusChanged(ctx, true)
	runner.drain()
}

func TestSessionCoordinator_SuppressedNotificationStillMarksUnread(t *testing.T) {
	ctx := testContext()
	settings := coordinator.DefaultSettings()
	settings.Notifications.Enabled = false
	f := started(t, settings)

	f.coord.NotificationRaised(ctx, entity.DefaultAccountID, port.RaisedNotification{Body: "quiet"})
	assert.True(t, f.account(t, entity.DefaultAccountID).HasUnread)
}

func TestSessionCoordinator_UnreadBadgeDisabled(t *testing.T) {
	ctx := testContext()
	settings := coordinator.DefaultSettings()
	settings.DisableUnreadBadge = true
	settings.Notifications.Enabled = false
	f := started(t, settings)

	f.coord.TitleChanged(ctx, entity.DefaultAccountID, "(3) WhatsApp")
	f.coord.NotificationRaised(ctx, entity.DefaultAccountID, port.RaisedNotification{Body: "x"})
	assert.False(t, f.account(t, entity.DefaultAccountID).HasUnread)
}

func TestSessionCoordinator_TitleDrivesUnread(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	f.coord.TitleChanged(ctx, entity.DefaultAccountID, "(3) WhatsApp")
	assert.True(t, f.account(t, entity.DefaultAccountID).HasUnread)

	f.coord.TitleChanged(ctx, entity.DefaultAccountID, "WhatsApp")
	assert.False(t, f.account(t, entity.DefaultAccountID).HasUnread)

	f.coord.WindowFocusChanged(ctx, true)
	f.coord.TitleChanged(ctx, entity.DefaultAccountID, "(1) WhatsApp")
	assert.False(t, f.account(t, entity.DefaultAccountID).HasUnread)
}

func TestSessionCoordinator_FocusClearsForegroundUnread(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	f.coord.TitleChanged(ctx, entity.DefaultAccountID, "(2) WhatsApp")
	require.True(t, f.account(t, entity.DefaultAccountID).HasUnread)

	f.coord.WindowFocusChanged(ctx, false)
	assert.True(t, f.account(t, entity.DefaultAccountID).HasUnread)

	f.coord.WindowFocusChanged(ctx, true)
	assert.False(t, f.account(t, entity.DefaultAccountID).HasUnread)
}

func TestSessionCoordinator_RemoveForegroundAccount(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	_, err := f.coord.AddAccount(ctx, "Work", "", "")
	require.NoError(t, err)
	require.NoError(t, f.coord.SwitchAccount(ctx, "work"))
	workView := f.engine.views["work"]

	_, err = os.Stat(f.accounts.SessionDir("work"))
	require.NoError(t, err)

	require.NoError(t, f.coord.RemoveAccount(ctx, "work"))

	assert.True(t, workView.destroyed)
	assert.Equal(t, entity.DefaultAccountID, f.coord.ForegroundAccountID())
	assert.True(t, f.engine.views[entity.DefaultAccountID].visible)
	assert.True(t, f.account(t, entity.DefaultAccountID).IsActive)
	_, err = os.Stat(f.accounts.SessionDir("work"))
	assert.True(t, os.IsNotExist(err))

	summary, err := f.coord.AccountsSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, entity.DefaultAccountID, summary[0].ID)
}

func TestSessionCoordinator_RemoveAccountSaveFailureKeepsSession(t *testing.T) {
	ctx := testContext()
	var stored []entity.Account
	var saveErr error
	repo := repomocks.NewMockAccountRepository(t)
	repo.EXPECT().Load(mock.Anything).RunAndReturn(func(context.Context) ([]entity.Account, error) {
		return slices.Clone(stored), nil
	})
	repo.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, accounts []entity.Account) error {
		if saveErr != nil {
			return saveErr
		}
		stored = slices.Clone(accounts)
		return nil
	})

	f := newFixtureWith(t, coordinator.DefaultSettings(), fixtureOptions{repo: repo})
	require.NoError(t, f.coord.Start(ctx))
	_, err := f.coord.AddAccount(ctx, "Work", "", "")
	require.NoError(t, err)
	require.NoError(t, f.coord.SwitchAccount(ctx, "work"))
	workView := f.engine.views["work"]

	f.idle.EXPECT().Inhibit(mock.Anything, mock.Anything).Return(nil).Once()
	f.coord.MediaCaptureChanged(ctx, "work", true)

	saveErr = errors.New("disk full")
	require.ErrorContains(t, f.coord.RemoveAccount(ctx, "work"), "disk full")

	assert.False(t, workView.destroyed)
	assert.True(t, workView.visible)
	assert.Equal(t, "work", f.coord.ForegroundAccountID())
	assert.Equal(t, []string{entity.DefaultAccountID, "work"}, f.coord.Sessions())
	assert.True(t, f.account(t, "work").IsActive)
	f.idle.AssertNotCalled(t, "Uninhibit", mock.Anything)
}

func TestSessionCoordinator_RemoveGuards(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	require.ErrorIs(t, f.coord.RemoveAccount(ctx, entity.DefaultAccountID), entity.ErrProtectedAccount)
	require.NoError(t, f.coord.RemoveAccount(ctx, "ghost"))

	summary, err := f.coord.AccountsSummary(ctx)
	require.NoError(t, err)
	assert.Len(t, summary, 1)
}

func TestSessionCoordinator_ReorderKeepsDefaultPinned(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	_, err := f.coord.AddAccount(ctx, "Work", "", "")
	require.NoError(t, err)
	_, err = f.coord.AddAccount(ctx, "Home", "", "")
	require.NoError(t, err)

	require.NoError(t, f.coord.ReorderAccount(ctx, entity.DefaultAccountID, entity.DirectionDown))
	require.NoError(t, f.coord.ReorderAccount(ctx, "work", entity.DirectionUp))
	require.NoError(t, f.coord.ReorderAccount(ctx, "home", entity.DirectionUp))
	require.NoError(t, f.coord.ReorderAccount(ctx, "ghost", entity.DirectionUp))

	var ids []string
	for _, s := range f.chrome.lastSummary() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{entity.DefaultAccountID, "home", "work"}, ids)
}

func TestSessionCoordinator_UpdateIdentityOfForegroundAccount(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	require.NoError(t, f.coord.UpdateIdentity(ctx, entity.DefaultAccountID, "Personal", "🏠", "#33d17a"))
	assert.Equal(t, "Personal", f.account(t, entity.DefaultAccountID).Name)
	assert.Len(t, f.chrome.active, 2)
	assert.Equal(t, "Personal", f.chrome.lastSummary()[0].Name)

	require.NoError(t, f.coord.UpdateIdentity(ctx, "ghost", "x", "", entity.DefaultColor))
	require.Error(t, f.coord.UpdateIdentity(ctx, entity.DefaultAccountID, "x", "", "green"))
}

func TestSessionCoordinator_ZoomFloor(t *testing.T) {
	ctx := testContext()
	settings := coordinator.DefaultSettings()
	settings.ZoomFloorEnabled = true
	settings.ZoomFloor = 1.5
	f := started(t, settings)

	view := f.engine.views[entity.DefaultAccountID]
	assert.InDelta(t, 1.5, view.zoom, 1e-9)

	level, err := f.coord.SetZoom(ctx, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, level, 1e-9)

	level, err = f.coord.ZoomIn(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1.6, level, 1e-9)
	assert.InDelta(t, 1.6, view.zoom, 1e-9)

	added, err := f.coord.AddAccount(ctx, "Work", "", "")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f.account(t, added.ID).ZoomLevel, 1e-9)
}

func TestSessionCoordinator_ApplyConfigRaisesLiveSessions(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())
	view := f.engine.views[entity.DefaultAccountID]

	settings := coordinator.DefaultSettings()
	settings.ZoomFloorEnabled = true
	settings.ZoomFloor = 2.0
	f.coord.ApplyConfig(ctx, settings)

	assert.InDelta(t, 2.0, view.zoom, 1e-9)
	assert.InDelta(t, 2.0, f.account(t, entity.DefaultAccountID).ZoomLevel, 1e-9)

	settings.ZoomFloorEnabled = false
	f.coord.ApplyConfig(ctx, settings)
	level, err := f.coord.ResetZoom(ctx)
	require.NoError(t, err)
	assert.InDelta(t, entity.ZoomDefault, level, 1e-9)
}

func TestSessionCoordinator_ZoomWithoutSession(t *testing.T) {
	f := newFixture(t, coordinator.DefaultSettings())

	_, err := f.coord.ZoomOut(testContext())
	require.ErrorIs(t, err, coordinator.ErrNoForegroundSession)
	require.ErrorIs(t, f.coord.ReloadActive(testContext()), coordinator.ErrNoForegroundSession)
}

func TestSessionCoordinator_ReloadActive(t *testing.T) {
	f := started(t, coordinator.DefaultSettings())

	require.NoError(t, f.coord.ReloadActive(testContext()))
	assert.Equal(t, 1, f.engine.views[entity.DefaultAccountID].reloads)
}

func TestSessionCoordinator_PrewarmOnStart(t *testing.T) {
	ctx := testContext()
	settings := coordinator.DefaultSettings()
	settings.PrewarmOnStart = true
	f := newFixture(t, settings)

	_, err := f.accounts.EnsureDefaultAccount(ctx)
	require.NoError(t, err)
	require.NoError(t, f.accounts.Add(ctx, entity.NewAccount("work", "Work", "", "", 0)))

	require.NoError(t, f.coord.Start(ctx))
	assert.Equal(t, []string{entity.DefaultAccountID, "work"}, f.coord.Sessions())
	assert.True(t, f.engine.views[entity.DefaultAccountID].visible)
	assert.False(t, f.engine.views["work"].visible)
}

func TestSessionCoordinator_MediaCaptureInhibitsIdleOnce(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())
	_, err := f.coord.AddAccount(ctx, "Work", "", "")
	require.NoError(t, err)

	f.idle.EXPECT().Inhibit(mock.Anything, mock.Anything).Return(nil).Once()
	f.coord.MediaCaptureChanged(ctx, entity.DefaultAccountID, true)
	f.coord.MediaCaptureChanged(ctx, "work", true)
	f.coord.MediaCaptureChanged(ctx, "work", true)

	f.coord.MediaCaptureChanged(ctx, entity.DefaultAccountID, false)

	f.idle.EXPECT().Uninhibit(mock.Anything).Return(nil).Once()
	f.coord.MediaCaptureChanged(ctx, "work", false)
}

func TestSessionCoordinator_PermissionRequests(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	require.NoError(t, f.accounts.SetPermission(ctx, entity.DefaultAccountID, entity.PermissionMicrophone, true, true))

	allowed := 0
	f.coord.PermissionRequested(ctx, entity.DefaultAccountID,
		port.PermissionRequest{Kinds: []entity.PermissionKind{entity.PermissionMicrophone}},
		usecase.PermissionCallback{Allow: func() { allowed++ }, Deny: func() { t.Fatal("denied") }})
	assert.Equal(t, 1, allowed)

	f.dialog.EXPECT().ShowPermissionDialog(mock.Anything, mock.Anything, []entity.PermissionKind{entity.PermissionNotification}, mock.Anything).
		Run(func(_ context.Context, _ entity.Account, _ []entity.PermissionKind, cb func(port.PermissionDialogResult)) {
			cb(port.PermissionDialogResult{Dismissed: true})
		}).
		Return().
		Once()

	denied := 0
	f.coord.PermissionRequested(ctx, entity.DefaultAccountID,
		port.PermissionRequest{Kinds: []entity.PermissionKind{entity.PermissionNotification}},
		usecase.PermissionCallback{Allow: func() { t.Fatal("allowed") }, Deny: func() { denied++ }})
	assert.Equal(t, 1, denied)
	assert.True(t, f.account(t, entity.DefaultAccountID).NotificationPermissionAsked)
	assert.False(t, f.account(t, entity.DefaultAccountID).NotificationPermissionGranted)
}

func TestSessionCoordinator_LoadFinishedRefreshesSessionState(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())
	require.False(t, f.account(t, entity.DefaultAccountID).HasSession)

	storage := f.accounts.DataDir(entity.DefaultAccountID) + "/storage"
	require.NoError(t, os.MkdirAll(storage, 0o700))
	f.coord.LoadFinished(ctx, entity.DefaultAccountID)
	require.False(t, f.account(t, entity.DefaultAccountID).HasSession)

	require.NoError(t, os.WriteFile(storage+"/localstorage.sqlite", []byte("x"), 0o600))
	f.coord.LoadFinished(ctx, entity.DefaultAccountID)
	assert.True(t, f.account(t, entity.DefaultAccountID).HasSession)
}

func TestSessionCoordinator_Shutdown(t *testing.T) {
	ctx := testContext()
	f := started(t, coordinator.DefaultSettings())

	f.idle.EXPECT().Inhibit(mock.Anything, mock.Anything).Return(nil).Once()
	f.coord.MediaCaptureChanged(ctx, entity.DefaultAccountID, true)

	f.idle.EXPECT().Uninhibit(mock.Anything).Return(nil).Once()
	f.idle.EXPECT().Close().Return(nil).Once()
	f.transport.EXPECT().Close().Return(nil).Once()

	require.NoError(t, f.coord.Shutdown(ctx))
	assert.True(t, f.engine.views[entity.DefaultAccountID].destroyed)
	assert.Empty(t, f.coord.Sessions())

	require.NoError(t, f.coord.Shutdown(ctx))
}
