// Package workbook provides the runner logic for the exercise workbook:
// progress status, topic detail, recording answers, and a live watch mode.
package workbook

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/recovery/pkg/printers"
	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/store"
	"tableflip.dev/recovery/pkg/workbook"
)

// Workbook dispatches on which fields are set: an Answer writes, a TopicID
// shows one topic, otherwise the full status renders. Watch keeps the
// status on screen and reprints when another process changes the store.
type Workbook struct {
	TopicID     string
	QuestionKey string
	Answer      string
	Watch       bool

	Persistence *store.Store
}

func (n *Workbook) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open workbook, no persistence")
	}

	wb := repo.NewWorkbook(n.Persistence)
	pp := printers.PrettyPrint{}

	if n.QuestionKey != "" {
		return n.answer(wb, pp)
	}

	if n.TopicID != "" {
		topic, ok := workbook.FindTopic(n.TopicID)
		if !ok {
			return fmt.Errorf("unknown topic %q", n.TopicID)
		}
		fmt.Println("")
		pp.Topic(topic, wb.Responses())
		return nil
	}

	fmt.Println("")
	pp.WorkbookStatus(workbook.Catalog(), wb.Responses())

	if n.Watch {
		return n.watch(ctx, wb, pp)
	}
	return nil
}

func (n *Workbook) answer(wb *repo.Workbook, pp printers.PrettyPrint) error {
	topic, ok := topicForKey(n.QuestionKey)
	if !ok {
		return fmt.Errorf("unknown question key %q", n.QuestionKey)
	}
	if err := wb.Set(n.QuestionKey, n.Answer); err != nil {
		return err
	}
	fmt.Println("")
	pp.Topic(topic, wb.Responses())
	return nil
}

// watch blocks until ctx is cancelled, reprinting the status whenever the
// workbook document changes on disk.
func (n *Workbook) watch(ctx context.Context, wb *repo.Workbook, pp printers.PrettyPrint) error {
	watcher, ok := n.Persistence.Substrate().(store.Watcher)
	if !ok {
		return errors.New("this store can not be watched")
	}
	events, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}
	fmt.Println("watching for changes, ctrl-c to stop")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, open := <-events:
			if !open {
				return nil
			}
			if ev.Key != "" && ev.Key != store.KeyWorkbook {
				continue
			}
			fmt.Println("")
			pp.WorkbookStatus(workbook.Catalog(), wb.Responses())
		}
	}
}

func topicForKey(key string) (workbook.Topic, bool) {
	for _, category := range workbook.Catalog() {
		for _, topic := range category.Topics {
			for _, k := range topic.QuestionKeys() {
				if k == key {
					return topic, true
				}
			}
		}
	}
	return workbook.Topic{}, false
}
