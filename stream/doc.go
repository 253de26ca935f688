// SPDX-License-Identifier: EPL-2.0

// Package stream adapts a pull-based audio.Provider to a push-based
// transform.Transform and serves the result as another audio.Provider.
//
// A Reader pulls one chunk at a time from its source (one second of audio
// by default), timestamps it, feeds it to the transform and collects every
// output chunk the transform has ready. Output that does not fit the
// caller's buffer is kept for the next Read.
//
//	r, err := stream.NewReader(src, audio.NewPCMFormat(16000, 16, 1), nil)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	buf := make([]byte, 4096)
//	n, err := r.Read(buf)
//
// When the source is exhausted the transform is drained and its trailing
// output delivered. Moving the source requires Reposition (or SetPosition,
// which also seeks the source) so that output from before the move is
// dropped.
package stream
