// Package main provides the deck control CLI entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"

	apiconnect "github.com/osa030/mediadeck/internal/api/connect"
	mediadeckv1 "github.com/osa030/mediadeck/internal/gen/mediadeck/v1"
	"github.com/osa030/mediadeck/internal/gen/mediadeck/v1/mediadeckv1connect"
)

var (
	app     = kingpin.New("deckctl", "Control client for the mediadeck server")
	server  = app.Flag("server", "Server address").Default("http://127.0.0.1:8090").String()
	token   = app.Flag("token", "Control token (or set MEDIADECK_TOKEN env)").Envar("MEDIADECK_TOKEN").String()
	handle  = app.Flag("session", "Session handle (default: first session)").Short('s').String()
	timeout = app.Flag("timeout", "Timeout for unary calls").Default("10s").Duration()

	// sessions command
	sessionsCmd = app.Command("sessions", "List sessions").Alias("ls")

	// open command
	openCmd = app.Command("open", "Open a new session")

	// close command
	closeCmd    = app.Command("close", "Close a session")
	closeHandle = closeCmd.Arg("session", "Session handle").Required().String()

	// add command
	addCmd   = app.Command("add", "Append files to the playlist")
	addPlay  = addCmd.Flag("play", "Play the last added file right away").Bool()
	addFiles = addCmd.Arg("files", "Media files").Required().Strings()

	// play command
	playCmd      = app.Command("play", "Play an entry, or toggle pause on the current one")
	playIndexSet bool
	playIndex    = playCmd.Arg("index", "Playlist index").Action(func(*kingpin.ParseContext) error { playIndexSet = true; return nil }).Int()

	// next command
	nextCmd = app.Command("next", "Play the next entry")

	// prev command
	prevCmd = app.Command("prev", "Play the previous entry")

	// select command
	selectCmd   = app.Command("select", "Select an entry without playing it")
	selectIndex = selectCmd.Arg("index", "Playlist index").Required().Int()

	// loop command
	loopCmd     = app.Command("loop", "Enable or disable looping")
	loopEnabled = loopCmd.Arg("enabled", "on or off").Required().Enum("on", "off")

	// status command
	statusCmd = app.Command("status", "Show a session's playlist")

	// watch command
	watchCmd = app.Command("watch", "Stream notices")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	client := mediadeckv1connect.NewDeckServiceClient(
		http.DefaultClient,
		*server,
		connect.WithInterceptors(apiconnect.NewTokenInterceptor(*token)),
	)

	if command == watchCmd.FullCommand() {
		watch(client)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var err error
	switch command {
	case sessionsCmd.FullCommand():
		err = listSessions(ctx, client)
	case openCmd.FullCommand():
		var resp *connect.Response[mediadeckv1.OpenSessionResponse]
		if resp, err = client.OpenSession(ctx, connect.NewRequest(&mediadeckv1.OpenSessionRequest{})); err == nil {
			fmt.Printf("Session opened: %s\n", resp.Msg.Session)
		}
	case closeCmd.FullCommand():
		req := connect.NewRequest(&mediadeckv1.CloseSessionRequest{Session: *closeHandle})
		if _, err = client.CloseSession(ctx, req); err == nil {
			fmt.Println("Session closed")
		}
	case addCmd.FullCommand():
		err = add(ctx, client)
	case playCmd.FullCommand():
		req := &mediadeckv1.PlayRequest{Session: *handle}
		if playIndexSet {
			index := int32(*playIndex)
			req.Index = &index
		}
		_, err = client.Play(ctx, connect.NewRequest(req))
	case nextCmd.FullCommand():
		_, err = client.Next(ctx, connect.NewRequest(&mediadeckv1.NextRequest{Session: *handle}))
	case prevCmd.FullCommand():
		_, err = client.Prev(ctx, connect.NewRequest(&mediadeckv1.PrevRequest{Session: *handle}))
	case selectCmd.FullCommand():
		_, err = client.SelectEntry(ctx, connect.NewRequest(&mediadeckv1.SelectEntryRequest{
			Session: *handle,
			Index:   int32(*selectIndex),
		}))
	case loopCmd.FullCommand():
		_, err = client.SetLoop(ctx, connect.NewRequest(&mediadeckv1.SetLoopRequest{
			Session: *handle,
			Enabled: *loopEnabled == "on",
		}))
	case statusCmd.FullCommand():
		err = status(ctx, client)
	}

	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		fmt.Printf("Error: %s (%s)\n", connectErr.Message(), connectErr.Code())
	} else {
		fmt.Printf("Error: %v\n", err)
	}
	os.Exit(1)
}

func listSessions(ctx context.Context, client mediadeckv1connect.DeckServiceClient) error {
	resp, err := client.ListSessions(ctx, connect.NewRequest(&mediadeckv1.ListSessionsRequest{}))
	if err != nil {
		return err
	}

	sessions := resp.Msg.Sessions
	fmt.Printf("Sessions (%d):\n", len(sessions))
	for i, s := range sessions {
		fmt.Printf("  %d. %s  state=%s entries=%d active=%d loop=%v\n",
			i+1, s.Session, formatState(s.State), len(s.Entries), s.ActiveIndex, s.LoopEnabled)
	}
	return nil
}

func add(ctx context.Context, client mediadeckv1connect.DeckServiceClient) error {
	for i, f := range *addFiles {
		resp, err := client.Append(ctx, connect.NewRequest(&mediadeckv1.AppendRequest{
			Session: *handle,
			Path:    f,
			Play:    *addPlay && i == len(*addFiles)-1,
		}))
		if err != nil {
			return err
		}
		fmt.Printf("Added [%d] %s\n", resp.Msg.Index, f)
	}
	return nil
}

func status(ctx context.Context, client mediadeckv1connect.DeckServiceClient) error {
	resp, err := client.GetSession(ctx, connect.NewRequest(&mediadeckv1.GetSessionRequest{Session: *handle}))
	if err != nil {
		return err
	}
	s := resp.Msg.Session

	fmt.Println("\n=== SESSION STATUS ===")
	fmt.Printf("Session: %s\n", s.Session)
	fmt.Printf("Created: %s\n", s.CreatedAt.AsTime().Local().Format(time.DateTime))
	fmt.Printf("State: %s\n", formatState(s.State))
	fmt.Printf("Loop: %v (replays: %d)\n", s.LoopEnabled, s.LoopCount)

	if len(s.Entries) == 0 {
		fmt.Println("\nPlaylist is empty")
		fmt.Println()
		return nil
	}

	fmt.Println("\nPlaylist:")
	for _, e := range s.Entries {
		cursor := " "
		switch e.Index {
		case s.ActiveIndex:
			cursor = ">"
		case s.PendingIndex:
			cursor = "+"
		}
		fmt.Printf(" %s %-2s %3d  %-30s %s\n", cursor, e.Marker, e.Index, e.Name, formatLength(e.LengthMs))
	}
	fmt.Println()
	return nil
}

func formatLength(ms int64) string {
	if ms <= 0 {
		return "--:--"
	}
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func watch(client mediadeckv1connect.DeckServiceClient) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.WatchNotices(ctx, connect.NewRequest(&mediadeckv1.WatchNoticesRequest{Session: *handle}))
	if err != nil {
		fail(err)
	}
	defer stream.Close()

	fmt.Println("Watching notices. Press Ctrl+C to exit.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nStopping...")
		cancel()
	}()

	for stream.Receive() {
		printNotice(stream.Msg())
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		fail(err)
	}
}

func printNotice(n *mediadeckv1.Notice) {
	prefix := fmt.Sprintf("[%d %s] %s", n.SequenceNo, n.Time.AsTime().Local().Format(time.TimeOnly), shortHandle(n.Session))

	switch n.Type {
	case mediadeckv1.NoticeType_NOTICE_TYPE_INITIAL_STATE:
		fmt.Printf("%s initial state=%s active=%d %s\n", prefix, formatState(n.State), n.Index, n.Path)
	case mediadeckv1.NoticeType_NOTICE_TYPE_ENTRY_ADDED:
		fmt.Printf("%s added [%d] %s\n", prefix, n.Index, n.Path)
	case mediadeckv1.NoticeType_NOTICE_TYPE_ACTIVE_CHANGED:
		fmt.Printf("%s active [%d] %s\n", prefix, n.Index, n.Path)
	case mediadeckv1.NoticeType_NOTICE_TYPE_STATE_CHANGED:
		fmt.Printf("%s %-2s [%d] state=%s\n", prefix, n.Marker, n.Index, formatState(n.State))
	case mediadeckv1.NoticeType_NOTICE_TYPE_LOOPED:
		fmt.Printf("%s looped [%d] x%d\n", prefix, n.Index, n.LoopCount)
	case mediadeckv1.NoticeType_NOTICE_TYPE_ERROR:
		fmt.Printf("%s ERROR %s (%s) [%d] %s\n", prefix, n.Message, n.Code, n.Index, n.Path)
	case mediadeckv1.NoticeType_NOTICE_TYPE_SESSION_OPENED:
		fmt.Printf("%s session opened\n", prefix)
	case mediadeckv1.NoticeType_NOTICE_TYPE_SESSION_CLOSED:
		fmt.Printf("%s session closed\n", prefix)
	default:
		fmt.Printf("%s %s\n", prefix, n.Type)
	}
}

func formatState(state mediadeckv1.PlaybackState) string {
	switch state {
	case mediadeckv1.PlaybackState_PLAYBACK_STATE_IDLE:
		return "idle"
	case mediadeckv1.PlaybackState_PLAYBACK_STATE_LOADING:
		return "loading"
	case mediadeckv1.PlaybackState_PLAYBACK_STATE_PLAYING:
		return "playing"
	case mediadeckv1.PlaybackState_PLAYBACK_STATE_PAUSED:
		return "paused"
	case mediadeckv1.PlaybackState_PLAYBACK_STATE_FINISHED:
		return "finished"
	case mediadeckv1.PlaybackState_PLAYBACK_STATE_ERROR:
		return "error"
	default:
		return "unknown"
	}
}

func shortHandle(h string) string {
	if len(h) > 8 {
		return h[:8]
	}
	return h
}
