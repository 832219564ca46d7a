package swapi

// getAllFilmsQuery fetches one page of films with Relay-style cursors
const getAllFilmsQuery = `
query GetAllFilms($first: Int, $after: String, $before: String, $last: Int) {
  allFilms(first: $first, after: $after, before: $before, last: $last) {
    films {
      title
      director
      releaseDate
      speciesConnection {
        species {
          name
          classification
          homeworld {
            name
          }
        }
      }
    }
    totalCount
    pageInfo {
      hasNextPage
      hasPreviousPage
      startCursor
      endCursor
    }
  }
}
`
