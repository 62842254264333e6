// Package airating provides an embedded Go client for the ai-rating review
// service: scrape professor pages, search the stored review log, and chat
// with a completion model grounded on matching reviews.
//
//	client, _ := airating.New(
//	    airating.WithRedis("localhost:6379", ""),
//	    airating.WithCompletion(os.Getenv("OPENAI_API_KEY"), "gpt-4o-mini"),
//	)
//	defer client.Close()
//
//	rev, _ := client.Scrape(ctx, pageURL)
//
//	results, _ := client.Search(ctx, airating.Criteria{Subject: "Biology"})
//
//	chunks, _ := client.Chat(ctx, []airating.Turn{
//	    {Role: "user", Content: "Who teaches the best biology course?"},
//	})
//	for chunk := range chunks {
//	    fmt.Print(chunk.Content)
//	}
package airating
