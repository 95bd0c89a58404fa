// Package shell implements an interactive console for solving boards
// against dictionaries repeatedly without reloading the program.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/lettergrid/boggle/board"
	"github.com/lettergrid/boggle/config"
	"github.com/lettergrid/boggle/lexicon"
	"github.com/lettergrid/boggle/solver"
	"github.com/lettergrid/boggle/trie"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curBoard    *board.GameBoard
	curTrie     *trie.Trie
	curAccepted int
	curFindings []solver.Finding
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	showMessage("commands:", w)
	showMessage("load <path> - load a board file", w)
	showMessage("dict <path> - build the dictionary from a word list file", w)
	showMessage("dictdb <path> - build the dictionary from a sqlite lexicon db", w)
	showMessage("show - display the current board", w)
	showMessage("solve - find every word on the current board", w)
	showMessage("stats - summarize the last solve", w)
	showMessage("bye, exit - leave the shell", w)
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mboggle>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) loadBoard(path string) error {
	b, err := lexicon.LoadBoardFile(path)
	if err != nil {
		return err
	}
	sc.curBoard = b
	// Board changed; the old trie was filtered against the old board's
	// histogram and cannot be reused.
	if sc.curTrie != nil {
		sc.curTrie.Destroy()
		sc.curTrie = nil
	}
	sc.curFindings = nil
	showMessage(b.ToDisplayText(), sc.l.Stderr())
	return nil
}

func (sc *ShellController) buildDict(src lexicon.Source) error {
	if sc.curBoard == nil {
		return errors.New("load a board first")
	}
	if sc.curTrie != nil {
		sc.curTrie.Destroy()
		sc.curTrie = nil
	}
	maxLen := sc.cfg.GetInt("max-word-length")
	if maxLen == 0 {
		maxLen = sc.curBoard.Dim() * sc.curBoard.Dim()
	}
	bld := trie.NewBuilder(sc.curBoard.Histogram(), maxLen)
	err := src.Each(func(word string) error {
		_, err := bld.AddWord(word)
		return err
	})
	if err != nil {
		// An incomplete trie must never be searched.
		bld.Trie().Destroy()
		return err
	}
	bld.LogStats()
	sc.curTrie = bld.Trie()
	sc.curAccepted = bld.Accepted()
	showMessage(fmt.Sprintf("filtered dictionary down to %d words", bld.Accepted()),
		sc.l.Stderr())
	return nil
}

func (sc *ShellController) solve() error {
	if sc.curBoard == nil || sc.curTrie == nil {
		return errors.New("load a board and a dictionary first")
	}
	s := solver.NewSolver(sc.curBoard, sc.curTrie)
	if err := s.Solve(); err != nil {
		return err
	}
	sc.curFindings = s.Findings()
	for _, f := range sc.curFindings {
		showMessage("found word "+f.String(), sc.l.Stderr())
	}
	showMessage(fmt.Sprintf("%d findings", len(sc.curFindings)), sc.l.Stderr())
	return nil
}

func (sc *ShellController) stats() error {
	if sc.curFindings == nil {
		return errors.New("nothing solved yet")
	}
	words := lo.Uniq(lo.Map(sc.curFindings, func(f solver.Finding, _ int) string {
		return f.Word
	}))
	showMessage(fmt.Sprintf("%d findings, %d distinct words (dictionary had %d)",
		len(sc.curFindings), len(words), sc.curAccepted), sc.l.Stderr())
	if len(sc.curFindings) > 0 {
		longest := lo.MaxBy(sc.curFindings, func(a, b solver.Finding) bool {
			return len(a.Word) > len(b.Word)
		})
		showMessage("longest: "+longest.String(), sc.l.Stderr())
	}
	return nil
}

func (sc *ShellController) modeSwitch(line string, sig chan os.Signal) error {
	switch {
	case strings.HasPrefix(line, "load "):
		if err := sc.loadBoard(strings.TrimSpace(line[5:])); err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	case strings.HasPrefix(line, "dictdb "):
		src := lexicon.DBSource{Path: strings.TrimSpace(line[7:])}
		if err := sc.buildDict(src); err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	case strings.HasPrefix(line, "dict "):
		src := lexicon.FileSource{Path: strings.TrimSpace(line[5:])}
		if err := sc.buildDict(src); err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	case line == "show":
		if sc.curBoard == nil {
			showMessage("no board loaded", sc.l.Stderr())
		} else {
			showMessage(sc.curBoard.ToDisplayText(), sc.l.Stderr())
		}
	case line == "solve":
		if err := sc.solve(); err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	case line == "stats":
		if err := sc.stats(); err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	case line == "bye" || line == "exit":
		sig <- syscall.SIGINT
		return errors.New("sending quit signal")
	case strings.HasPrefix(line, "help"):
		usage(sc.l.Stderr())
	default:
		if strings.TrimSpace(line) != "" {
			log.Debug().Msgf("you said: %v", line)
		}
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if err := sc.modeSwitch(line, sig); err != nil {
			break
		}
	}
	if sc.curTrie != nil {
		sc.curTrie.Destroy()
	}
	log.Debug().Msgf("Exiting readline loop...")
}
