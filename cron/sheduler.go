package cron

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// StartCron schedules every registered job and starts the scheduler.
func StartCron() (*cron.Cron, error) {
	c := cron.New()
	for name, j := range Jobs() {
		run := j.Run
		name := name
		_, err := c.AddFunc(j.Schedule, func() {
			log.Printf("cron: running %s", name)
			run()
		})
		if err != nil {
			return nil, fmt.Errorf("failed to register job %s: %w", name, err)
		}
		log.Printf("cron: scheduled %s (%s)", name, j.Schedule)
	}
	c.Start()
	return c, nil
}
