package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
	"github.com/yigit/aceup/internal/app/models/dto"
	"github.com/yigit/aceup/internal/app/services"
	"github.com/yigit/aceup/internal/pkg/validation"
)

// withCourseSession opens storage for a command that operates on --course.
func withCourseSession(opts *cliOptions, fn func(cmd *cobra.Command, sess *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := requireCourse(opts); err != nil {
			return err
		}
		sess, err := openSession(cmd, opts)
		if err != nil {
			return err
		}
		defer sess.Close()
		return fn(cmd, sess, args)
	}
}

func newAddCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "add NAME WEIGHT GRADE",
		Short:   "Append a graded item to a course",
		Example: `  gradectl add --course cs101 "Midterm" 30 4.5`,
		Args:    cobra.ExactArgs(3),
		RunE: withCourseSession(opts, func(cmd *cobra.Command, sess *session, args []string) error {
			in, err := validation.ParseGradeItemInput(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			view, err := sess.services.GradeService.AddItem(cmd.Context(), opts.courseID, in.Name, in.Weight, in.Grade)
			if err != nil {
				return err
			}
			added := view.Book.Items()[view.Book.Len()-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", added.Name, added.ID)
			return printSummary(cmd.OutOrStdout(), view)
		}),
	}
}

func newRemoveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ITEM_ID",
		Short: "Remove a graded item; unknown IDs are ignored",
		Args:  cobra.ExactArgs(1),
		RunE: withCourseSession(opts, func(cmd *cobra.Command, sess *session, args []string) error {
			view, err := sess.services.GradeService.RemoveItem(cmd.Context(), opts.courseID, args[0])
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), view)
		}),
	}
}

func newReplaceCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replace ITEM_ID NAME WEIGHT GRADE",
		Short: "Replace a graded item; the replacement gets a new ID",
		Args:  cobra.ExactArgs(4),
		RunE: withCourseSession(opts, func(cmd *cobra.Command, sess *session, args []string) error {
			in, err := validation.ParseGradeItemInput(args[1], args[2], args[3])
			if err != nil {
				return err
			}
			view, err := sess.services.GradeService.ReplaceItem(cmd.Context(), opts.courseID, args[0], in.Name, in.Weight, in.Grade)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), view)
		}),
	}
}

func newListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the graded items of a course",
		Args:  cobra.NoArgs,
		RunE: withCourseSession(opts, func(cmd *cobra.Command, sess *session, _ []string) error {
			view, err := sess.services.GradeService.GetGradeBook(cmd.Context(), opts.courseID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := printItems(out, view); err != nil {
				return err
			}
			return printSummary(out, view)
		}),
	}
}

func newGradeCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "grade",
		Short: "Print the current weighted grade of a course",
		Args:  cobra.NoArgs,
		RunE: withCourseSession(opts, func(cmd *cobra.Command, sess *session, _ []string) error {
			view, err := sess.services.GradeService.GetGradeBook(cmd.Context(), opts.courseID)
			if err != nil {
				return err
			}
			printWarning(cmd.ErrOrStderr(), view)
			fmt.Fprintln(cmd.OutOrStdout(), dto.FormatGrade(view.Book.Compute()))
			return nil
		}),
	}
}

func newClearCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every graded item of a course",
		Args:  cobra.NoArgs,
		RunE: withCourseSession(opts, func(cmd *cobra.Command, sess *session, _ []string) error {
			view, err := sess.services.GradeService.ClearGradeBook(cmd.Context(), opts.courseID)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), view)
		}),
	}
}

func newPriorityCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "priority EVENTS_FILE",
		Short: "Show the pending event that needs attention first",
		Long: `Reads a JSON document of the form {"events": [...]} and ranks the pending
events by weight, due date and type. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open events file: %w", err)
				}
				defer f.Close()
				r = f
			}

			var req dto.HighestPriorityRequest
			if err := json.NewDecoder(r).Decode(&req); err != nil {
				return fmt.Errorf("failed to parse events: %w", err)
			}
			if err := binding.Validator.ValidateStruct(&req); err != nil {
				return fmt.Errorf("invalid events: %w", err)
			}

			sess, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer sess.Close()

			analysis, err := sess.services.AnalyticsService.AnalyzeEvents(cmd.Context(), req.ToDomain())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if analysis.Event == nil {
				fmt.Fprintln(out, "No pending events.")
			} else {
				e := analysis.Event
				fmt.Fprintf(out, "Top priority: %s (%s, score %.2f)\n", e.Title, e.Type, e.PriorityScore)
				fmt.Fprintf(out, "Due in %d day(s), urgency %s\n", analysis.DaysToDue, analysis.Urgency)
				fmt.Fprintf(out, "Pending events: %d, course load %s\n", analysis.TotalPending, analysis.CourseLoad)
			}
			for _, rec := range analysis.Recommendations {
				fmt.Fprintf(out, "- %s\n", rec)
			}
			return nil
		},
	}
}

func printItems(out io.Writer, view *services.GradeBookView) error {
	items := view.Book.Items()
	if len(items) == 0 {
		fmt.Fprintf(out, "No grade items for %s.\n", view.Book.CourseID())
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tWEIGHT\tGRADE")
	for i, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.2f\n", i+1, item.ID, item.Name, item.Weight, item.Grade)
	}
	return tw.Flush()
}

func printSummary(out io.Writer, view *services.GradeBookView) error {
	printWarning(out, view)
	resp := dto.NewGradeBookResponse(view.Book, view.Degraded, view.Unsaved, view.Warning)
	_, err := fmt.Fprintf(out, "Weight used: %.2f%% (%.2f%% remaining)\nCurrent grade: %s\n",
		resp.WeightUsed, resp.WeightRemaining, resp.CurrentGradeDisplay)
	return err
}

func printWarning(out io.Writer, view *services.GradeBookView) {
	if view.Warning != "" {
		fmt.Fprintf(out, "Warning: %s\n", view.Warning)
	}
}
