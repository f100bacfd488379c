// Package gtts provides a Go client for the Google Translate text-to-speech
// endpoint.
//
// Text is split into parts of at most [MaxChars] characters, each part is
// sent to the translate web endpoint, and the returned MP3 fragments are
// concatenated in order.
//
// # Basic Usage
//
//	client := gtts.NewClient()
//
//	audio, err := client.Synthesize(ctx, &gtts.Request{
//	    Text: "Hello, world!",
//	    Lang: "en",
//	})
//
// # Streaming
//
// Stream returns an iter.Seq2 iterator yielding one MP3 fragment per part:
//
//	for chunk, err := range client.Stream(ctx, req) {
//	    if err != nil {
//	        return err
//	    }
//	    w.Write(chunk)
//	}
//
// # Languages
//
// The supported languages are described by a [Catalog]. [DefaultCatalog]
// returns the built-in one; requests with LangCheck set are rejected with
// [ErrUnsupportedLanguage] when the tag is not in the client's catalog.
//
// # Error Handling
//
// Endpoint failures are returned as *Error values carrying the HTTP status
// and a probable cause:
//
//	if e, ok := gtts.AsError(err); ok {
//	    fmt.Println(e.HTTPStatus, e.Cause())
//	}
package gtts
