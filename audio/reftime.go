// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// RefTime is a timestamp or duration in hundred-nanosecond ticks.
type RefTime int64

// RefTimePerSecond is the number of ticks in one second.
const RefTimePerSecond RefTime = 10_000_000

// BytesToRefTime converts a byte count of format f into ticks.
func BytesToRefTime(n int, f Format) RefTime {
	rate := f.AverageBytesPerSecond()
	if rate == 0 {
		return 0
	}
	return RefTime(int64(RefTimePerSecond) * int64(n) / int64(rate))
}

// RefTimeToBytes converts ticks into a byte count of format f, rounded down
// to a whole frame.
func RefTimeToBytes(t RefTime, f Format) int64 {
	n := int64(t) * int64(f.AverageBytesPerSecond()) / int64(RefTimePerSecond)
	if align := int64(f.BlockAlign()); align > 0 {
		n -= n % align
	}
	return n
}

// Duration converts t to a time.Duration.
func (t RefTime) Duration() time.Duration { return time.Duration(t) * 100 }
