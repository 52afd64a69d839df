package vectorstore

import "notekw/internal/domain"

// Storage persists note vectors and supports similarity search.
type Storage = domain.VectorStore
