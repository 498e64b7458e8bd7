// Package main is a demonstration harness for the watchful collections: it
// replays a YAML-described operation scenario against an event-subscribed
// list and prints the resulting notification trace.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/watchful-go/watchful/arraylist"
	"github.com/watchful-go/watchful/event"
)

func main() {
	os.Exit(run())
}

func run() int {
	var scenarioPath string
	flag.StringVar(&scenarioPath, "scenario", "", "path to a YAML scenario file (default: built-in demo)")
	flag.Parse()

	scenario := builtinScenario()
	if scenarioPath != "" {
		loaded, err := loadScenario(scenarioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "colldemo: %v\n", err)
			return 1
		}
		scenario = loaded
	}

	if err := replay(scenario); err != nil {
		fmt.Fprintf(os.Stderr, "colldemo: %v\n", err)
		return 1
	}
	return 0
}

// replay applies the scenario to a fresh list with all six channels
// subscribed, printing each notification as it fires.
func replay(s *Scenario) error {
	fmt.Printf("scenario %s\n", s.Name)

	list := arraylist.New[string]()
	hub := list.Events()

	subscribeAll(hub)

	for i, op := range s.Ops {
		fmt.Printf("-- op %d: %s\n", i, describe(op))
		if err := apply(list, op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}

	fmt.Printf("final: %v (count=%d)\n", list, list.Count())
	return nil
}

func subscribeAll(hub *event.Hub[string]) {
	hub.OnChanged(func(any) {
		fmt.Println("   event: changed")
	})
	hub.OnCleared(func(_ any, info event.ClearedInfo) {
		if info.Full {
			fmt.Printf("   event: cleared full count=%d\n", info.Count)
		} else {
			fmt.Printf("   event: cleared range start=%d count=%d\n", info.Start, info.Count)
		}
	})
	hub.OnAdded(func(_ any, ev event.ItemCount[string]) {
		fmt.Printf("   event: added %q x%d\n", ev.Item, ev.Count)
	})
	hub.OnRemoved(func(_ any, ev event.ItemCount[string]) {
		fmt.Printf("   event: removed %q x%d\n", ev.Item, ev.Count)
	})
	hub.OnInserted(func(_ any, ev event.ItemAt[string]) {
		fmt.Printf("   event: inserted %q at %d\n", ev.Item, ev.Index)
	})
	hub.OnRemovedAt(func(_ any, ev event.ItemAt[string]) {
		fmt.Printf("   event: removed %q from %d\n", ev.Item, ev.Index)
	})
}

func apply(list *arraylist.List[string], op Op) error {
	switch op.Op {
	case "add":
		_, err := list.Add(op.Item)
		return err
	case "addall":
		_, err := list.AddAll(op.Items...)
		return err
	case "insert":
		return list.InsertAt(op.Index, op.Item)
	case "set":
		_, err := list.Set(op.Index, op.Item)
		return err
	case "remove":
		list.Remove(op.Item)
		return nil
	case "removeat":
		_, err := list.RemoveAt(op.Index)
		return err
	case "removerange":
		return list.RemoveRange(op.Index, op.Count)
	case "update":
		_, _, err := list.Update(op.Item)
		return err
	case "reverse":
		list.Reverse()
		return nil
	case "sort":
		list.Sort(strings.Compare)
		return nil
	case "shuffle":
		list.Shuffle(rand.New(rand.NewPCG(1, 2)))
		return nil
	case "clear":
		list.Clear()
		return nil
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
}

func describe(op Op) string {
	switch op.Op {
	case "add", "remove", "update":
		return fmt.Sprintf("%s %q", op.Op, op.Item)
	case "addall":
		return fmt.Sprintf("addall %v", op.Items)
	case "insert", "set":
		return fmt.Sprintf("%s %q at %d", op.Op, op.Item, op.Index)
	case "removeat":
		return fmt.Sprintf("removeat %d", op.Index)
	case "removerange":
		return fmt.Sprintf("removerange start=%d count=%d", op.Index, op.Count)
	default:
		return op.Op
	}
}
