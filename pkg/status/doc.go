/*
Package status owns target file IO and the per-target results of a run.

	            +-------------+
	            |   Status    |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Results |
	|  (IO)     |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads a target exactly once and rejects content that is not UTF-8
- Writes a target atomically: temp file in the same directory, then rename
- Records Updated, Skipped or Failed for each target
- Formats results for the console

⚡ Errors:
Every per-file failure is a *FileError and matches ErrFileIO with errors.Is.
Invalid UTF-8 additionally matches ErrEncoding. A failed write leaves the
original file unchanged.

🔍 Example:

	fm := status.New("posts")

	content, err := fm.ReadFile(ctx, "my-post.html")
	if err != nil {
		return status.Failed("my-post.html", err)
	}

	if err := fm.WriteFileAtomic(ctx, "my-post.html", updated); err != nil {
		return status.Failed("my-post.html", err)
	}

	var summary status.Summary
	summary.Add(status.Updated("my-post.html", len(updated)))
	fmt.Println(summary.String())
*/
package status
