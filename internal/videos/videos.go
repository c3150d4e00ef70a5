// Package videos holds the video and comment data model demo.
package videos

import (
	"fmt"
	"io"
	"strings"
)

// Comment is one viewer comment.
type Comment struct {
	ID        string
	Author    string
	Text      string
	Timestamp string // YYYY-MM-DD
}

func (c Comment) String() string {
	return fmt.Sprintf("Comment(id='%s', author='%s', text='%s')", c.ID, c.Author, c.Text)
}

// Video is one uploaded video with its comments.
type Video struct {
	ID            string
	Title         string
	Author        string
	LengthSeconds int
	Description   string
	URL           string
	Comments      []Comment
}

// CommentCount returns the number of comments.
func (v *Video) CommentCount() int { return len(v.Comments) }

// AddComment appends a comment.
func (v *Video) AddComment(c Comment) { v.Comments = append(v.Comments, c) }

func (v *Video) String() string {
	return fmt.Sprintf("Video(id='%s', title='%s', author='%s', length=%ds, comments=%d)",
		v.ID, v.Title, v.Author, v.LengthSeconds, v.CommentCount())
}

// WriteListing prints every video with its comments.
func WriteListing(w io.Writer, videos []*Video) {
	fmt.Fprintln(w, "--- Stored Videos and Comments ---")
	for i, v := range videos {
		fmt.Fprintf(w, "--- Video #%d ---\n", i+1)
		fmt.Fprintf(w, "Title: %s\n", v.Title)
		fmt.Fprintf(w, "Author: %s\n", v.Author)
		fmt.Fprintf(w, "Length: %d seconds\n", v.LengthSeconds)
		fmt.Fprintf(w, "Number of comments: %d\n", v.CommentCount())
		if v.CommentCount() > 0 {
			fmt.Fprintln(w, "Comments:")
			for _, c := range v.Comments {
				fmt.Fprintf(w, "    - '%s' by %s\n", c.Text, c.Author)
			}
		}
		fmt.Fprintln(w, strings.Repeat("-", 25))
	}
}

// Catalog returns the four sample videos.
func Catalog() []*Video {
	return []*Video{
		{
			ID: "v123", Title: "Unboxing the 'Cosmic Sound' Headphones", Author: "TechReviewer", LengthSeconds: 620,
			Description: "I'm excited to unbox the new headphones!", URL: "http://youtube.com/v123",
			Comments: []Comment{
				{"c101", "Alice", "Wow, I love the Cosmic Sound headphones!", "2024-05-20"},
				{"c102", "Bob", "Does this brand make other headsets too?", "2024-05-21"},
				{"c103", "Charlie", "The sound quality on these is amazing.", "2024-05-21"},
				{"c104", "Diana", "Can you review the 'Quantum Bass' headset next?", "2024-05-22"},
			},
		},
		{
			ID: "v456", Title: "My Top 5 Gaming Headsets", Author: "GamerPro", LengthSeconds: 450,
			Description: "A review of the best headsets for gaming.", URL: "http://youtube.com/v456",
			Comments: []Comment{
				{"c201", "Evan", "I bought one based on your video, thanks!", "2024-05-22"},
				{"c202", "Fiona", "Great breakdown of the pros and cons.", "2024-05-23"},
				{"c203", "George", "Any thoughts on the 'Sonic' brand?", "2024-05-23"},
				{"c204", "Hannah", "Very helpful, subbed!", "2024-05-24"},
			},
		},
		{
			ID: "v789", Title: "Cooking with a Smart Oven", Author: "ChefJulia", LengthSeconds: 380,
			Description: "Today we're trying out the new 'SmartChef' oven.", URL: "http://youtube.com/v789",
			Comments: []Comment{
				{"c301", "Ian", "This oven looks so futuristic!", "2024-05-25"},
				{"c302", "Jasmine", "Does it preheat faster than a regular oven?", "2024-05-25"},
				{"c303", "Kyle", "I need one of these in my kitchen.", "2024-05-26"},
				{"c304", "Laura", "Love your channel, Julia!", "2024-05-26"},
			},
		},
		{
			ID: "v901", Title: "Running 10K in 40 Minutes", Author: "FitnessFreak", LengthSeconds: 550,
			Description: "My tips and tricks to improve your 10K time.", URL: "http://youtube.com/v901",
			Comments: []Comment{
				{"c401", "Mark", "Your advice on pacing was a game-changer for me.", "2024-05-27"},
				{"c402", "Nancy", "What shoes are you wearing?", "2024-05-27"},
				{"c403", "Oliver", "I'm going to try this on my next run. Thanks!", "2024-05-28"},
				{"c404", "Pam", "Great video, very inspiring.", "2024-05-28"},
			},
		},
	}
}
