package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// BookingCompleter sweeps confirmed bookings whose end time has passed.
type BookingCompleter interface {
	CompleteExpired(now time.Time) (int, error)
}

var bookingCompleter BookingCompleter

// SetBookingCompleter thiết lập implementation cho BookingCompleter.
func SetBookingCompleter(completer BookingCompleter) {
	bookingCompleter = completer
}

// InitCronJobs khởi tạo các cron jobs.
func InitCronJobs(c *cron.Cron) error {
	// Quét mỗi 5 phút để chuyển booking đã hết hạn sang completed.
	_, err := c.AddFunc("*/5 * * * *", func() {
		if bookingCompleter == nil {
			log.Println("Lỗi: BookingCompleter chưa được thiết lập")
			return
		}
		completed, err := bookingCompleter.CompleteExpired(time.Now())
		if err != nil {
			log.Printf("Lỗi khi hoàn tất booking hết hạn: %v", err)
			return
		}
		if completed > 0 {
			log.Printf("Đã hoàn tất %d booking hết hạn", completed)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
