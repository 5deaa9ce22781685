package catalog

import "bookfinder/backend/internal/model"

// seedBooks is the fixed catalog served by the application. Most covers
// point at the Unsplash placeholder service and are candidates for
// enrichment; a couple already carry real cover URLs.
var seedBooks = []model.Book{
	{ID: 1, Title: "Dune", Author: "Frank Herbert", Genre: "science fiction", CoverURL: "https://source.unsplash.com/300x450/?book,scifi"},
	{ID: 2, Title: "The Shining", Author: "Stephen King", Genre: "horror", CoverURL: "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1353277730i/11588.jpg"},
	{ID: 3, Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "romance", CoverURL: "https://source.unsplash.com/300x450/?book,romance"},
	{ID: 4, Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "fantasy", CoverURL: "https://source.unsplash.com/300x450/?book,fantasy"},
	{ID: 5, Title: "Gone Girl", Author: "Gillian Flynn", Genre: "thriller", CoverURL: "https://source.unsplash.com/300x450/?book,thriller"},
	{ID: 6, Title: "The Martian", Author: "Andy Weir", Genre: "science fiction", CoverURL: "https://source.unsplash.com/300x450/?book,mars"},
	{ID: 7, Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "classic", CoverURL: "https://source.unsplash.com/300x450/?book,classic"},
	{ID: 8, Title: "The Da Vinci Code", Author: "Dan Brown", Genre: "mystery", CoverURL: "https://source.unsplash.com/300x450/?book,mystery"},
	{ID: 9, Title: "1984", Author: "George Orwell", Genre: "dystopian", CoverURL: "https://source.unsplash.com/300x450/?book,dystopian"},
	{ID: 10, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "classic", CoverURL: "https://source.unsplash.com/300x450/?book,gatsby"},
	{ID: 11, Title: "Atomic Habits", Author: "James Clear", Genre: "self development", CoverURL: "https://source.unsplash.com/300x450/?book,habits"},
	{ID: 12, Title: "The 7 Habits of Highly Effective People", Author: "Stephen Covey", Genre: "self development", CoverURL: "https://source.unsplash.com/300x450/?book,effective"},
	{ID: 13, Title: "Good Omens", Author: "Terry Pratchett & Neil Gaiman", Genre: "comedy", CoverURL: "https://source.unsplash.com/300x450/?book,comedy"},
	{ID: 14, Title: "The Hitchhiker's Guide to the Galaxy", Author: "Douglas Adams", Genre: "comedy", CoverURL: "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1559986152i/386162.jpg"},
	{ID: 15, Title: "Rich Dad Poor Dad", Author: "Robert Kiyosaki", Genre: "finance", CoverURL: "https://source.unsplash.com/300x450/?book,finance"},
}
