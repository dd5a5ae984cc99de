//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command scheme evaluates Scheme-subset expressions, either one at a
// time from the argument list/a file, or interactively in a REPL.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/AnastasiaStD/Scheme-language-interpreter/scheme"
)

// atExitMutex is used to modify the list of exit functions.
var atExitMutex sync.Mutex

// atExitFuncs are functions called when the program is exiting.
var atExitFuncs []func()

// runAtExit registers a function to be invoked when exit() is called.
// There is no guarantee these run if the process is brought down
// abruptly (e.g. os.Exit elsewhere); they run in registration order.
func runAtExit(fn func()) {
	atExitMutex.Lock()
	defer atExitMutex.Unlock()
	atExitFuncs = append(atExitFuncs, fn)
}

// exit invokes the registered at-exit functions and then terminates
// the process with the given status.
func exit(status int) {
	atExitMutex.Lock()
	for _, fn := range atExitFuncs {
		fn()
	}
	os.Exit(status)
}

func main() {
	defer exit(0)
	setupLogging()
	logSysInfo()

	root := &cobra.Command{
		Use:   "scheme",
		Short: "A Scheme-subset expression interpreter",
	}
	root.AddCommand(newEvalCommand())
	root.AddCommand(newReplCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exit(1)
	}
}

// newEvalCommand builds the `scheme eval` subcommand: one-shot
// string-in/string-out evaluation, either of the given argument or of
// a file named with -f.
func newEvalCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate a single expression and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return errors.Wrapf(err, "reading %s", file)
				}
				input = string(data)
			} else if len(args) == 1 {
				input = args[0]
			} else {
				return errors.New("provide an expression argument or -f FILE")
			}
			ip := scheme.NewInterpreter()
			result, err := ip.Run(input)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the expression from a file")
	return cmd
}

// newReplCommand builds the `scheme repl` subcommand: an interactive
// read-eval-print-loop with line editing and history, replacing the
// teacher's raw bufio.NewReader loop (lispRepl in the original
// main.go) with github.com/chzyer/readline.
func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	historyFile := ""
	if usr, err := user.Current(); err == nil {
		historyFile = filepath.Join(usr.HomeDir, ".scheme_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "scheme> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return errors.Wrap(err, "initializing line editor")
	}
	defer rl.Close()

	ip := scheme.NewInterpreter()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return nil
		}
		if line == "" {
			continue
		}
		if line == ":exit" {
			return nil
		}
		result, rerr := ip.Run(line)
		if rerr != nil {
			fmt.Println(rerr)
			continue
		}
		fmt.Println(result)
	}
}

// setupLogging sets the output of the standard logger to a file in
// the user's home directory, so log messages are directed there
// instead of cluttering REPL/eval output. Grounded on the teacher's
// setupLogging (the former root main.go), trimmed to what a
// short-lived CLI process actually needs.
func setupLogging() {
	usr, err := user.Current()
	if err != nil {
		log.Fatalln(err)
	}
	dir := filepath.Join(usr.HomeDir, ".scheme-lang")
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			os.Mkdir(dir, 0755)
		} else {
			log.Fatalln(err)
		}
	}
	logname := filepath.Join(dir, "messages.log")
	logfile, err := os.OpenFile(logname, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		log.Fatalln(err)
	}
	out := bufio.NewWriter(logfile)
	log.SetOutput(out)
	runAtExit(func() {
		out.Flush()
		logfile.Sync()
		logfile.Close()
	})
}

// logSysInfo writes a small set of diagnostic information to the log
// file at startup, grounded on the teacher's logSysInfo.
func logSysInfo() {
	header := "-------------------------------------------------------------------------------"
	log.Println(header)
	log.Printf("Log Session: %s\n", time.Now().Format(time.ANSIC))
	log.Printf("Go Version = %s\n", runtime.Version())
	if pwd, err := os.Getwd(); err == nil {
		log.Printf("Current Directory = %s\n", pwd)
	}
	log.Println(header)
}
